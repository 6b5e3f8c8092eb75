// Package assets embeds the resource bundle shipped with the application.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed bundle
var bundle embed.FS

// FS returns the bundle rooted at its top directory, so paths look like
// "icons/play.png".
func FS() fs.FS {
	sub, err := fs.Sub(bundle, "bundle")
	if err != nil {
		panic(err)
	}
	return sub
}
