// Package api holds the published API description of the service.
package api

import _ "embed"

// SwaggerFile is the path under /swagger/ the document is served at.
const SwaggerFile = "shop.swagger.json"

// SwaggerJSON is the OpenAPI 2.0 document for the HTTP API.
//
//go:embed swagger/shop.swagger.json
var SwaggerJSON []byte
