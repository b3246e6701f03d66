package blogfront

import (
	"embed"
	"io/fs"
	"net/http"
)

// EmbeddedAssets ships the small client scripts for the consent banner and
// the analytics beacon so a bare checkout serves them without a build step.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func embeddedAssetHandler() http.Handler {
	sub, _ := fs.Sub(EmbeddedAssets, "embedded")
	return http.StripPrefix("/public/", http.FileServer(http.FS(sub)))
}
