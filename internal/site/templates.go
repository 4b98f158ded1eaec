package site

// pageTemplate is the single-page layout for the exported portfolio.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header>
<h1>{{.Title}}</h1>
</header>
<main>
{{range .Sections}}
<section>
<h2>{{.Title}}</h2>
{{range .Entries}}
<article>
{{if .Label}}<h3>{{.Label}}</h3>{{end}}
{{if .Meta}}<p class="meta">{{.Meta}}</p>{{end}}
{{if .Body}}<div class="body">{{.Body}}</div>{{end}}
</article>
{{end}}
</section>
{{end}}
</main>
</body>
</html>
`

// cssContent is the stylesheet written next to index.html.
const cssContent = `:root {
  --fg: #1f2328;
  --muted: #656d76;
  --border: #d0d7de;
  --accent: #0969da;
}
* { box-sizing: border-box; }
body {
  margin: 0 auto;
  max-width: 840px;
  padding: 2rem 1rem;
  color: var(--fg);
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
}
header h1 { margin: 0 0 1.5rem; }
section { margin-bottom: 2.5rem; }
section > h2 {
  border-bottom: 1px solid var(--border);
  padding-bottom: 0.3rem;
}
article { margin-bottom: 1.5rem; }
article h3 { margin-bottom: 0.2rem; }
.meta { color: var(--muted); margin-top: 0; font-size: 0.9rem; }
.body pre {
  background: #f6f8fa;
  padding: 0.8rem;
  overflow-x: auto;
  border-radius: 6px;
}
a { color: var(--accent); }
`
