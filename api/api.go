// Package api carries the service's public HTTP contract.
package api

import _ "embed"

// OpenAPISpec is the embedded OpenAPI 3 document describing the REST surface.
//
//go:embed openapi.yml
var OpenAPISpec []byte
