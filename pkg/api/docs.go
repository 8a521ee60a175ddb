package api

import "github.com/swaggo/swag"

// docTemplate is the Swagger 2.0 document for the routes in server.go.
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
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Feature status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}}
                }
            }
        },
        "/encode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chunks"],
                "summary": "Encode a message",
                "parameters": [
                    {"description": "Encode request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.EncodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ChunkResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ChunkResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ChunkResponse"}}
                }
            }
        },
        "/decode": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chunks"],
                "summary": "Decode a message",
                "parameters": [
                    {"description": "Decode request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.DecodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ChunkResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ChunkResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ChunkResponse"}}
                }
            }
        },
        "/print": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chunks"],
                "summary": "List chunks",
                "parameters": [
                    {"description": "Print request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PrintRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ChunkResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ChunkResponse"}}
                }
            }
        },
        "/remove": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chunks"],
                "summary": "Remove a chunk",
                "parameters": [
                    {"description": "Remove request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.RemoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ChunkResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ChunkResponse"}}
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Upload an image",
                "parameters": [
                    {"type": "file", "description": "PNG image", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.UploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.UploadResponse"}}
                }
            }
        },
        "/download/{name}": {
            "get": {
                "produces": ["image/png"],
                "tags": ["images"],
                "summary": "Download an image",
                "parameters": [
                    {"type": "string", "description": "Image name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ChunkResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ChunkResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "chunks": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "api.UploadResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "image_path": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "api.StatusResponse": {
            "type": "object",
            "properties": {
                "encoding": {"type": "string"},
                "decoding": {"type": "string"},
                "metadata": {"type": "string"}
            }
        },
        "api.EncodeRequest": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "chunk_type": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "api.DecodeRequest": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "chunk_type": {"type": "string"}
            }
        },
        "api.PrintRequest": {
            "type": "object",
            "properties": {
                "path": {"type": "string"}
            }
        },
        "api.RemoveRequest": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "chunk_type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "stega REST API",
	Description:      "Hide, read and remove text messages in PNG chunks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
