// Package docs registers the OpenAPI document served at /api/docs/swagger.json
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
        "/api/admin/auth/captcha/init": {
            "get": {
                "description": "Initialize rotate captcha for admin login (returns base64 images and challenge ID)",
                "produces": ["application/json"],
                "tags": ["Admin Authentication"],
                "summary": "Admin captcha init",
                "responses": {
                    "200": {"description": "Captcha initialized", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Failed to initialize captcha", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "503": {"description": "Captcha not available", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/admin/auth/login": {
            "post": {
                "description": "Verify captcha and authenticate admin with username/password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin Authentication"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Admin login data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AdminLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid request or captcha", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "403": {"description": "Admin inactive", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/forms": {
            "get": {
                "description": "List submissions optionally filtered by district or constituency (case-insensitive substring)",
                "produces": ["application/json"],
                "tags": ["Forms"],
                "summary": "List form submissions",
                "parameters": [
                    {"type": "string", "description": "Native district filter", "name": "district", "in": "query"},
                    {"type": "string", "description": "Assembly constituency filter", "name": "constituency", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Forms retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            },
            "post": {
                "description": "Validate and store a registration form, returning its generated identifier",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Forms"],
                "summary": "Submit registration form",
                "parameters": [
                    {"description": "Registration form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormSubmissionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Form submitted successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "409": {"description": "Form already submitted with this email or mobile number", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "429": {"description": "Too many submissions", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/forms/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Download submissions as an xlsx workbook (admin only)",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Forms"],
                "summary": "Export form submissions",
                "parameters": [
                    {"type": "string", "description": "Native district filter", "name": "district", "in": "query"},
                    {"type": "string", "description": "Assembly constituency filter", "name": "constituency", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Workbook", "schema": {"type": "file"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/forms/stats/summary": {
            "get": {
                "description": "Total submissions, submissions since local midnight and the top 10 districts",
                "produces": ["application/json"],
                "tags": ["Forms"],
                "summary": "Form statistics",
                "responses": {
                    "200": {"description": "Statistics retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/forms/{id}": {
            "get": {
                "description": "Get a single submission by its generated identifier (e.g. CVM240007)",
                "produces": ["application/json"],
                "tags": ["Forms"],
                "summary": "Get form submission",
                "parameters": [
                    {"type": "string", "description": "Form identifier", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Form retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Form not found", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Check the health status of the API and its backing stores",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "Service is healthy", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "503": {"description": "Service is degraded", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AdminLoginRequest": {
            "type": "object",
            "required": ["challenge_id", "username", "password"],
            "properties": {
                "challenge_id": {"type": "string"},
                "username": {"type": "string", "minLength": 3, "maxLength": 64},
                "password": {"type": "string", "minLength": 8, "maxLength": 72},
                "user_angle": {"type": "number", "minimum": 0, "maximum": 360}
            }
        },
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {}
            }
        },
        "dto.FormSubmissionRequest": {
            "type": "object",
            "required": ["name", "gender", "dob", "guardianName", "permanentAddress", "nativeDistrict", "assemblyConstituency", "qualification", "yearOfCompletion", "institutionName", "institutionLocation", "mobile", "email"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "gender": {"type": "string", "enum": ["male", "female", "other"]},
                "dob": {"type": "string", "example": "1998-04-21"},
                "guardianName": {"type": "string", "maxLength": 100},
                "permanentAddress": {"type": "string", "maxLength": 500},
                "nativeDistrict": {"type": "string", "maxLength": 100},
                "assemblyConstituency": {"type": "string", "maxLength": 100},
                "qualification": {"type": "string", "maxLength": 100},
                "yearOfCompletion": {"type": "integer", "minimum": 1900},
                "institutionName": {"type": "string", "maxLength": 200},
                "institutionLocation": {"type": "string", "maxLength": 200},
                "mobile": {"type": "string", "example": "9876543210"},
                "email": {"type": "string", "maxLength": 255}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CVM Forms API",
	Description:      "Public registration form intake with sequential identifiers",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
