// Package web embeds the static single-page frontend.
//
// The frontend keeps its session in browser local storage only. That session
// is advisory: nothing server-side validates it on later requests, so it must
// never be treated as a security boundary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the embedded frontend assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
