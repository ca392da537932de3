package webserver

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sensmetry/detect/internal/webapi"
	"github.com/sensmetry/detect/web"
)

// pageShell wraps rendered documentation HTML in the site chrome.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>DETECT</title>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f7f7f8; color: #1a1a1a; }
header { background: #1f2430; color: #fff; padding: 0.75rem 1.5rem; }
header a { color: #fff; margin-right: 1rem; text-decoration: none; font-weight: 600; }
main { max-width: 48rem; margin: 2rem auto; padding: 0 1rem 3rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #e2e8f0; padding: .4rem .7rem; text-align: left; }
pre { background: #edf2f7; padding: .75rem; border-radius: 6px; overflow-x: auto; }
</style>
</head>
<body>
<header><a href="/">Home</a><a href="/tool">Configuration</a></header>
<main>%s</main>
</body>
</html>`

// registerRoutes sets up the API and page routes on the given mux.
func registerRoutes(mux *http.ServeMux, evaluator webapi.Evaluator, store *webapi.RunStore) error {
	docsPage, err := renderDocs()
	if err != nil {
		return fmt.Errorf("rendering documentation page: %w", err)
	}

	webapi.RegisterRoutes(mux, evaluator, store)

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(docsPage) //nolint:errcheck
	})
	mux.HandleFunc("GET /tool", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(web.ToolHTML) //nolint:errcheck
	})
	return nil
}

// renderDocs converts the embedded markdown documentation to HTML once,
// at startup. The page is static for the life of the process.
func renderDocs() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert(web.DocsMarkdown, &buf); err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf(pageShell, buf.String())), nil
}
