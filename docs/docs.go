// Package docs holds the Swagger document served at /swagger/*.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/api/customer": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Update a customer",
                "parameters": [
                    {
                        "description": "Customer data, including id",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.CustomerUpdate"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.CustomerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ports.CustomerResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Register a customer",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Client supplied key that makes the request safe to retry",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Customer data",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.CustomerRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.CustomerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/api/customer/cpf/{cpf}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get a customer by CPF",
                "parameters": [
                    {"type": "string", "description": "CPF, digits only or masked", "name": "cpf", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.CustomerResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/api/customer/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get a customer by id",
                "parameters": [
                    {"type": "integer", "description": "Customer id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.CustomerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/api/employee": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "List employees",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Records to skip", "name": "skip", "in": "query"},
                    {"maximum": 100, "type": "integer", "default": 10, "description": "Page size", "name": "take", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ports.EmployeeResponse"}}},
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Register an employee",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Client supplied key that makes the request safe to retry",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "Employee data with plaintext password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.EmployeeRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ports.EmployeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ports.EmployeeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        },
        "/api/employee/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Get an employee by id",
                "parameters": [
                    {"type": "integer", "description": "Employee id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.EmployeeResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Update an employee",
                "parameters": [
                    {"type": "integer", "description": "Employee id", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Employee data",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/ports.EmployeeUpdate"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.EmployeeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ports.EmployeeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Delete an employee",
                "parameters": [
                    {"type": "integer", "description": "Employee id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Problem"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.Problem"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Role": {
            "type": "string",
            "enum": ["Admin", "Manager", "Attendant"]
        },
        "handler.Problem": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "status": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "employee": {"$ref": "#/definitions/ports.EmployeeResponse"},
                "token": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ports.CustomerRequest": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string", "description": "YYYY-MM-DD or RFC 3339", "example": "1990-05-01"},
                "cpf": {"type": "string", "maxLength": 14},
                "email": {"type": "string", "maxLength": 100},
                "name": {"type": "string", "maxLength": 100},
                "surname": {"type": "string", "maxLength": 100}
            }
        },
        "ports.CustomerResponse": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string", "format": "date-time"},
                "cpf": {"type": "string"},
                "email": {"type": "string"},
                "error": {"type": "boolean"},
                "error_message": {"type": "string"},
                "id": {"type": "integer"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string"},
                "surname": {"type": "string"}
            }
        },
        "ports.CustomerUpdate": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string", "description": "YYYY-MM-DD or RFC 3339", "example": "1990-05-01"},
                "cpf": {"type": "string", "maxLength": 14},
                "email": {"type": "string", "maxLength": 100},
                "id": {"type": "integer"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string", "maxLength": 100},
                "surname": {"type": "string", "maxLength": 100}
            }
        },
        "ports.EmployeeRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "birth_date": {"type": "string", "description": "YYYY-MM-DD or RFC 3339", "example": "1990-05-01"},
                "cpf": {"type": "string", "maxLength": 14},
                "email": {"type": "string", "maxLength": 100},
                "name": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "maxLength": 255},
                "role": {"$ref": "#/definitions/domain.Role"},
                "surname": {"type": "string", "maxLength": 100}
            }
        },
        "ports.EmployeeResponse": {
            "type": "object",
            "properties": {
                "birth_date": {"type": "string", "format": "date-time"},
                "cpf": {"type": "string"},
                "email": {"type": "string"},
                "error": {"type": "boolean"},
                "error_message": {"type": "string"},
                "id": {"type": "integer"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string"},
                "role": {"$ref": "#/definitions/domain.Role"},
                "surname": {"type": "string"}
            }
        },
        "ports.EmployeeUpdate": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "birth_date": {"type": "string", "description": "YYYY-MM-DD or RFC 3339", "example": "1990-05-01"},
                "cpf": {"type": "string", "maxLength": 14},
                "email": {"type": "string", "maxLength": 100},
                "id": {"type": "integer"},
                "is_active": {"type": "boolean"},
                "name": {"type": "string", "maxLength": 100},
                "password": {"type": "string", "maxLength": 255},
                "role": {"$ref": "#/definitions/domain.Role"},
                "surname": {"type": "string", "maxLength": 100}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "User Management API",
	Description:      "Customers and employees of the store, with CPF and email validation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
