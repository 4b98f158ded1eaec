package main

import (
	"os"

	"github.com/django-nerd/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
