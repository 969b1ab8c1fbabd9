// Package docs holds the Swagger document served at /swagger/*. It is kept
// by hand in swag's registration layout; every route in RegisterRoutes has
// an entry here.
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
                "produces": ["text/html", "application/json"],
                "tags": ["pages"],
                "summary": "Landing page",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/application": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["pages"],
                "summary": "Application form; graduation years from the current year down to 2000",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/confirmation": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["pages"],
                "summary": "Confirmation page with a six-digit reference",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/metrics": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/signup": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["pages"],
                "summary": "Signup form",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["signup"],
                "summary": "Create an account; redirects to /application in html render mode",
                "parameters": [
                    {"description": "account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK (json render mode)", "schema": {"$ref": "#/definitions/service.SignupAck"}},
                    "302": {"description": "Found (html render mode)"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/success": {
            "get": {
                "produces": ["text/html", "application/json"],
                "tags": ["pages"],
                "summary": "Success page",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/admin/applications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "List submitted applications",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "page size (max 100)", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "rows to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/change-language": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["language"],
                "summary": "Switch the site language",
                "parameters": [
                    {"description": "language code and display name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.changeLanguageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ChangeResult"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/signup-process": {
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["signup"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SignupAck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/submit-application": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Submit a job application with a CV",
                "parameters": [
                    {"type": "string", "name": "fullname", "in": "formData", "required": true},
                    {"type": "integer", "name": "age", "in": "formData", "required": true},
                    {"type": "integer", "name": "graduation_year", "in": "formData", "required": true},
                    {"type": "string", "name": "experience", "in": "formData", "required": true},
                    {"type": "string", "name": "skills", "in": "formData"},
                    {"type": "file", "description": "PDF, DOC or DOCX within the upload size limit", "name": "cv", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.SubmissionAck"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/uploads/{name}": {
            "get": {
                "tags": ["applications"],
                "summary": "Download a stored CV",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.changeLanguageRequest": {
            "type": "object",
            "properties": {
                "lang": {"type": "string"},
                "langName": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/service.FieldError"}}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "error": {"$ref": "#/definitions/handler.errorEnvelope"}
            }
        },
        "handler.signupRequest": {
            "type": "object",
            "properties": {
                "fullname": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "service.ApplicationData": {
            "type": "object",
            "properties": {
                "fullname": {"type": "string"},
                "age": {"type": "integer"},
                "graduation_year": {"type": "integer"},
                "experience": {"type": "string"},
                "skills": {"type": "string"},
                "cvFileName": {"type": "string"},
                "cvPath": {"type": "string"}
            }
        },
        "service.ChangeResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "lang": {"type": "string"},
                "langName": {"type": "string"}
            }
        },
        "service.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "service.SignupAck": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "redirect": {"type": "string"}
            }
        },
        "service.SubmissionAck": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "applicationId": {"type": "string"},
                "timestamp": {"type": "string"},
                "data": {"$ref": "#/definitions/service.ApplicationData"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Careers Community API",
	Description:      "Multilingual job-application site: signup, CV submission and language switching.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
