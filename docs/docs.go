// Package docs holds the OpenAPI description served behind the Swagger UI.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
