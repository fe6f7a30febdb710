// Package api holds the OpenAPI document served under /swagger.
package api

import _ "embed"

// SwaggerJSON is the OpenAPI 2.0 description of the /users API.
//
//go:embed swagger.json
var SwaggerJSON []byte
