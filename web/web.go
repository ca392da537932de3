// Package web holds the embedded assets for the questionnaire web UI:
// the documentation landing page (markdown, rendered server-side) and
// the form page driven by the JSON API.
package web

import _ "embed"

// DocsMarkdown is the landing page documentation.
//
//go:embed docs.md
var DocsMarkdown []byte

// ToolHTML is the questionnaire form page.
//
//go:embed tool.html
var ToolHTML []byte
