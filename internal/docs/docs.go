// Package docs serves the human-readable API documentation page.
package docs

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed docs.md
var docsMarkdown []byte

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Search API Documentation</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #24292f; line-height: 1.6; }
code, pre { background: #f6f8fa; border-radius: 6px; font-family: ui-monospace, monospace; }
code { padding: 0.2em 0.4em; }
pre { padding: 1em; overflow-x: auto; }
pre code { padding: 0; }
table { border-collapse: collapse; }
th, td { border: 1px solid #d0d7de; padding: 0.4em 0.8em; }
h1, h2 { border-bottom: 1px solid #d8dee4; padding-bottom: 0.3em; }
</style>
</head>
<body>
%s
</body>
</html>
`

// Render converts the embedded markdown documentation into a full HTML page.
func Render() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert(docsMarkdown, &buf); err != nil {
		return nil, fmt.Errorf("failed to render documentation: %w", err)
	}

	return []byte(fmt.Sprintf(pageTemplate, buf.String())), nil
}
