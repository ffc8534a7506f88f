// Package docs registers the OpenAPI specification served at /swagger/*.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/distance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Distance"],
                "summary": "Straight-line distance between two places",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/driving-distance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Distance"],
                "summary": "Driving distance between two places",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "502": {"description": "Bad Gateway"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/api/place/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Get a place by ID",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/placeid/{zipcode}/{city}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Get a place by zipcode and city name",
                "parameters": [
                    {"type": "string", "name": "zipcode", "in": "path", "required": true},
                    {"type": "string", "name": "city", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/places/{zipcode}/{radius}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Get places within a radius of a zipcode",
                "parameters": [
                    {"type": "string", "name": "zipcode", "in": "path", "required": true},
                    {"type": "number", "name": "radius", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/search/{query}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Search places by free text",
                "parameters": [
                    {"type": "string", "name": "query", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3002",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Places Service API",
	Description:      "Backend for resolving place identifiers into coordinates, computing straight-line and driving distances, and answering proximity queries against a static places dataset.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
