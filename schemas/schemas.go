// Package schemas holds the embedded JSON Schema documents used to
// validate rule model files before they are decoded.
package schemas

import _ "embed"

// ModelSchemaJSON is the JSON Schema for rule model YAML documents.
//
//go:embed model.schema.json
var ModelSchemaJSON string
