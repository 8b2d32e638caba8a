//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// SwaggerInfo describes the gattmon API document served at /swagger/doc.json.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "gattmon API",
	Description:      "Recent GATT events and profile state of a gattmon process.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// MountSwagger serves the Swagger UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/status": {
            "get": {
                "produces": ["application/json"],
                "summary": "Profile state and event counts",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "summary": "Recorded events newer than since",
                "parameters": [
                    {"type": "integer", "name": "since", "in": "query"},
                    {"type": "string", "name": "wait", "in": "query", "description": "long-poll duration, e.g. 5s"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EventsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/statuses": {
            "get": {
                "produces": ["application/json"],
                "summary": "GATT and Bluetooth status code tables",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/types.StatusCode"}}}}
            }
        },
        "/scan": {
            "post": {
                "consumes": ["application/json"],
                "summary": "Start or stop LE scanning",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ScanRequest"}}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Profile not initialized", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "example": "initialized"},
                "backend": {"type": "string", "example": "loopback"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "events": {"type": "object", "additionalProperties": {"type": "integer"}},
                "total_events": {"type": "integer", "example": 42},
                "buffered": {"type": "integer", "example": 42}
            }
        },
        "types.EventRecord": {
            "type": "object",
            "properties": {
                "seq": {"type": "integer", "example": 7},
                "time": {"type": "string"},
                "category": {"type": "string", "example": "client"},
                "name": {"type": "string", "example": "CharacteristicRead"},
                "payload": {"type": "object"}
            }
        },
        "types.EventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/types.EventRecord"}},
                "next": {"type": "integer", "example": 7}
            }
        },
        "types.ScanRequest": {
            "type": "object",
            "properties": {"start": {"type": "boolean", "example": true}}
        },
        "types.StatusCode": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "example": "gatt"},
                "code": {"type": "integer", "example": 143},
                "name": {"type": "string", "example": "Congested"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid JSON body"},
                "code": {"type": "integer", "example": 400}
            }
        }
    }
}`
