// Package docs registers the Swagger description of the HTTP API.
// It is maintained by hand alongside the handler annotations.
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
        "/sales-notes": {
            "get": {
                "description": "Lists sales notes, most recently created first, optionally filtered by customer",
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "List sales notes",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Number of notes to skip", "name": "offset", "in": "query"},
                    {"maximum": 1000, "minimum": 1, "type": "integer", "default": 100, "description": "Maximum number of notes, 1 to 1000", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Only notes of this customer", "name": "customerID", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SalesNoteSummaryResponse"}}},
                    "400": {"description": "Invalid query parameters", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "description": "Creates a sales note together with its line items. A note number is generated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Create a sales note",
                "parameters": [
                    {"description": "Sales note details", "name": "note", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSalesNoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SalesNoteResponse"}},
                    "400": {"description": "Invalid input", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Customer or product not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Note number collision", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sales-notes/by-number/{number}": {
            "get": {
                "description": "Retrieves a sales note and its items by note number",
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Get a sales note by number",
                "parameters": [
                    {"type": "string", "description": "Note number, e.g. SN-2026-1A2B3C4D", "name": "number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SalesNoteResponse"}},
                    "404": {"description": "Sales note not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sales-notes/{id}": {
            "get": {
                "description": "Retrieves a sales note and its items by ID",
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Get a sales note",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SalesNoteResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "description": "Updates header fields of a draft or issued note. Items are not editable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Update a sales note",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "note", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSalesNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SalesNoteResponse"}},
                    "400": {"description": "Invalid input or note is paid/canceled", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "description": "Deletes a note and its items. Paid notes cannot be deleted.",
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Delete a sales note",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Invalid ID or note is paid", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sales-notes/{id}/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "List the items of a sales note",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SalesNoteItemResponse"}}},
                    "400": {"description": "Invalid ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sales-notes/{id}/generate-pdf": {
            "post": {
                "description": "Renders the note, stores the PDF and records its location on the note",
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Render a sales note to PDF",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RenderSalesNoteResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note, customer or product not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sales-notes/{id}/pdf": {
            "get": {
                "description": "Returns the most recently rendered PDF of the note",
                "produces": ["application/pdf"],
                "tags": ["sales-notes"],
                "summary": "Download the PDF of a sales note",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note or PDF not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/sales-notes/{id}/status": {
            "post": {
                "description": "Moves a note to a new status. Paid and canceled notes cannot change status.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-notes"],
                "summary": "Change the status of a sales note",
                "parameters": [
                    {"type": "integer", "description": "Sales note ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChangeSalesNoteStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SalesNoteResponse"}},
                    "400": {"description": "Invalid status or transition not allowed", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Sales note not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.SalesNoteStatus": {
            "type": "string",
            "enum": ["draft", "issued", "paid", "canceled"],
            "x-enum-varnames": ["StatusDraft", "StatusIssued", "StatusPaid", "StatusCanceled"]
        },
        "dto.ChangeSalesNoteStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"}
            }
        },
        "dto.CreateSalesNoteItemRequest": {
            "type": "object",
            "required": ["productID", "quantity"],
            "properties": {
                "productID": {"type": "integer"},
                "quantity": {"type": "integer"},
                "subtotal": {"type": "number"},
                "unitPrice": {"type": "number"}
            }
        },
        "dto.CreateSalesNoteRequest": {
            "type": "object",
            "required": ["customerID"],
            "properties": {
                "customerID": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.CreateSalesNoteItemRequest"}},
                "status": {"type": "string"},
                "taxAmount": {"type": "number"},
                "totalAmount": {"type": "number"}
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "dto.RenderSalesNoteResponse": {
            "type": "object",
            "properties": {
                "pdfPath": {"type": "string"}
            }
        },
        "dto.SalesNoteItemResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "integer"},
                "productID": {"type": "integer"},
                "quantity": {"type": "integer"},
                "salesNoteID": {"type": "integer"},
                "subtotal": {"type": "number"},
                "unitPrice": {"type": "number"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.SalesNoteResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "customerID": {"type": "integer"},
                "id": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.SalesNoteItemResponse"}},
                "noteDate": {"type": "string"},
                "noteNumber": {"type": "string"},
                "pdfPath": {"type": "string"},
                "status": {"$ref": "#/definitions/domain.SalesNoteStatus"},
                "taxAmount": {"type": "number"},
                "totalAmount": {"type": "number"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.SalesNoteSummaryResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "customerID": {"type": "integer"},
                "id": {"type": "integer"},
                "noteDate": {"type": "string"},
                "noteNumber": {"type": "string"},
                "pdfPath": {"type": "string"},
                "status": {"$ref": "#/definitions/domain.SalesNoteStatus"},
                "taxAmount": {"type": "number"},
                "totalAmount": {"type": "number"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.UpdateSalesNoteRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "taxAmount": {"type": "number"},
                "totalAmount": {"type": "number"}
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
	Host:             "localhost:8001",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Sales Notes Service API",
	Description:      "Creates, tracks and renders sales notes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
