package content

import (
	"embed"
	"strings"
)

//go:embed pages/*
var pagesFS embed.FS

// page returns an embedded prose file with surrounding blank lines trimmed.
// The files are compiled in, so a missing one is a build mistake.
func page(name string) string {
	b, err := pagesFS.ReadFile("pages/" + name)
	if err != nil {
		panic("content: missing embedded page " + name)
	}
	return strings.Trim(string(b), "\n")
}
