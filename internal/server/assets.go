package server

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var staticFS embed.FS

// Assets returns the stylesheet and client script served under /static.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
