package server

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchContent reloads the content file whenever it changes on disk and
// pushes a reload event to websocket subscribers. Returns a stop function.
func (s *Server) watchContent() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory rather than the file: editors often replace the
	// file on save, which drops a file-level watch.
	dir := filepath.Dir(s.cfg.ContentFile)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(s.cfg.ContentFile)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				data, err := LoadContent(s.cfg.ContentFile)
				if err != nil {
					log.Printf("server: reloading content: %v", err)
					continue
				}
				s.Replace(data)
				log.Printf("server: content reloaded from %s", s.cfg.ContentFile)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("server: watcher: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
