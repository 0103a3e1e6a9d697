package api

import _ "embed"

// Document is the OpenAPI description of the portal routes.
//
//go:embed openapi.json
var Document []byte
