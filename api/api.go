// Package api holds the OpenAPI description of the operational HTTP
// surface.
package api

import _ "embed"

// OpenAPI is the served document, embedded at build time.
//
//go:embed openapi.yaml
var OpenAPI []byte
