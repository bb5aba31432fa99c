// Package docs registers the OpenAPI document served on /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness message",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ping-db": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "MongoDB connectivity check",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/api/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user account",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/users/artists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List all artist accounts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Partially update a user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/users/{id}/follow": {
            "post": {
                "produces": ["application/json"],
                "tags": ["social"],
                "summary": "Toggle a follow on a user",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/users/{id}/purchases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "List a user's purchases",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/artworks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "List artworks, newest first",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Create an artwork listing",
                "parameters": [{"type": "string", "name": "X-User-ID", "in": "header", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/artworks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "Get an artwork with its artist",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/artworks/{id}/like": {
            "post": {
                "produces": ["application/json"],
                "tags": ["social"],
                "summary": "Toggle a like on an artwork",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/artworks/{id}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List an artwork's comments, newest first",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Comment on an artwork",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/artworks/{id}/purchase": {
            "post": {
                "produces": ["application/json"],
                "tags": ["purchases"],
                "summary": "Purchase an artwork",
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/artists/{id}/artworks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["artworks"],
                "summary": "List an artist's artworks",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Refugiart Bazar API",
	Description:      "A social marketplace platform for independent artists",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
