// Package docs registers the OpenAPI document served at /swagger/*.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"description": "User payload", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user by id",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/users/{id}/activities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "List a user's activities",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Activity"}}}
                }
            }
        },
        "/users/{id}/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "List a user's carbon logs",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.CarbonLog"}}}
                }
            }
        },
        "/users/{id}/recommendations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Get reduction recommendations",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.Recommendation"}}}
                }
            }
        },
        "/users/{id}/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Get dashboard data",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Window length in days", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DashboardData"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/activities": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Log an activity",
                "parameters": [
                    {"description": "Activity", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LogActivityRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.LogActivityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh access token",
                "parameters": [{"description": "Refresh token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout user",
                "parameters": [{"description": "Refresh token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reference"],
                "summary": "List activity categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ActivityCategory"}}}
                }
            }
        },
        "/categories/{id}/suggestions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reference"],
                "summary": "List reduction tips for a category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Suggestion"}}}
                }
            }
        },
        "/seed/reference": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed categories and suggestions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SeedReferenceResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.CreateUserRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "age": {"type": "integer", "minimum": 0},
                "email": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.RefreshRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {"refresh_token": {"type": "string"}}
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "refresh_token": {"type": "string"}, "user": {}}
        },
        "handler.LogActivityRequest": {
            "type": "object",
            "required": ["category_id", "description", "emission_factor", "unit", "user_id", "value"],
            "properties": {
                "category_id": {"type": "integer"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "emission_factor": {"type": "number"},
                "unit": {"type": "string"},
                "user_id": {"type": "integer"},
                "value": {"type": "number"}
            }
        },
        "handler.LogActivityResponse": {
            "type": "object",
            "properties": {"emission": {"type": "number"}, "message": {"type": "string"}}
        },
        "handler.SeedReferenceResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "result": {"$ref": "#/definitions/service.SeedResult"}}
        },
        "model.User": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.ActivityCategory": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.Suggestion": {
            "type": "object",
            "properties": {
                "category_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "reduction_estimate": {"type": "number"},
                "tip": {"type": "string"}
            }
        },
        "model.Activity": {
            "type": "object",
            "properties": {
                "category_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "emission_factor": {"type": "number"},
                "id": {"type": "integer"},
                "unit": {"type": "string"},
                "user_id": {"type": "integer"},
                "value": {"type": "number"}
            }
        },
        "model.CarbonLog": {
            "type": "object",
            "properties": {
                "activity_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "log_date": {"type": "string"},
                "total_emission": {"type": "number"},
                "user_id": {"type": "integer"}
            }
        },
        "service.Recommendation": {
            "type": "object",
            "properties": {"activity": {"type": "string"}, "potential_reduction": {"type": "number"}, "tip": {"type": "string"}}
        },
        "service.CategoryEmission": {
            "type": "object",
            "properties": {"category_id": {"type": "integer"}, "emission": {"type": "number"}}
        },
        "service.DashboardData": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"$ref": "#/definitions/model.Activity"}},
                "by_category": {"type": "array", "items": {"$ref": "#/definitions/service.CategoryEmission"}},
                "logs": {"type": "array", "items": {"$ref": "#/definitions/model.CarbonLog"}},
                "since": {"type": "string"},
                "total_emission": {"type": "number"},
                "window_days": {"type": "integer"}
            }
        },
        "service.SeedResult": {
            "type": "object",
            "properties": {
                "categories_created": {"type": "integer"},
                "categories_updated": {"type": "integer"},
                "suggestions_created": {"type": "integer"},
                "suggestions_skipped": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "EcoTrack API",
	Description:      "Carbon footprint tracking API: log activities, review emissions and get reduction tips.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
