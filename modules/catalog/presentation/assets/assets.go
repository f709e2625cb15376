// Package assets embeds the catalogue's static frontend. Files are
// served through a content-hashed filesystem so far-future cache
// headers stay safe across deploys.
package assets

import (
	"embed"
	"io/fs"

	"github.com/benbjohnson/hashfs"
)

//go:embed all:static
var files embed.FS

var FS = hashfs.NewFS(mustSub(files, "static"))

func mustSub(f embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
