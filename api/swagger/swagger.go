package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Admin API",
        "description": "Admin panel endpoints for users, categories and subjects",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Users", "description": "User approval and maintenance"},
        {"name": "Categories", "description": "Course categories"},
        {"name": "Subjects", "description": "Course subjects"},
        {"name": "Debug", "description": "Database inspection and ad hoc migration"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (pings the database)",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/api/admin/users/{id}": {
            "parameters": [
                {"name": "id", "in": "path", "required": true, "type": "string"}
            ],
            "patch": {
                "tags": ["Users"],
                "summary": "Approve user",
                "responses": {
                    "200": {"description": "User approved", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Replace user fields",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "User updated", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "responses": {
                    "200": {"description": "User deleted", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "500": {"description": "Database error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/categories/{id}": {
            "parameters": [
                {"name": "id", "in": "path", "required": true, "type": "string"}
            ],
            "put": {
                "tags": ["Categories"],
                "summary": "Rename category",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NameRequest"}}
                ],
                "responses": {
                    "200": {"description": "Category updated", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "400": {"description": "Name is required", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Categories"],
                "summary": "Delete category",
                "responses": {
                    "200": {"description": "Category deleted", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/api/subjects": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subjects, newest first",
                "parameters": [
                    {"name": "courseId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubjectListResponse"}}
                }
            },
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Subject created", "schema": {"$ref": "#/definitions/CreatedResponse"}},
                    "400": {"description": "courseId and name are required", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/subjects/export": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Export subjects as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "courseId", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/subjects/{id}": {
            "parameters": [
                {"name": "id", "in": "path", "required": true, "type": "string"}
            ],
            "put": {
                "tags": ["Subjects"],
                "summary": "Rename subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NameRequest"}}
                ],
                "responses": {
                    "200": {"description": "Subject updated", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "400": {"description": "Name is required", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Subjects"],
                "summary": "Delete subject",
                "responses": {
                    "200": {"description": "Subject deleted", "schema": {"$ref": "#/definitions/MessageResponse"}}
                }
            }
        },
        "/api/debug/check_db": {
            "get": {
                "tags": ["Debug"],
                "summary": "Inspect a user and their enrollments",
                "parameters": [
                    {"name": "email", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserInspectionResponse"}},
                    "404": {"description": "User not found (plain text)"},
                    "500": {"description": "Database error (plain text)"}
                }
            }
        },
        "/api/debug/migrate_courses": {
            "post": {
                "tags": ["Debug"],
                "summary": "Add courses.details (any method is accepted)",
                "description": "Not idempotent: the second run fails because the column already exists.",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Migration successful: courses.details column added"},
                    "500": {"description": "Migration failed: <driver error>"}
                }
            }
        }
    },
    "definitions": {
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "x-nullable": true},
                "email": {"type": "string", "x-nullable": true},
                "phone": {"type": "string", "x-nullable": true},
                "role": {"type": "string", "x-nullable": true},
                "approved": {"type": "boolean", "description": "true/false or 0/1"}
            }
        },
        "NameRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "CreateSubjectRequest": {
            "type": "object",
            "required": ["courseId", "name"],
            "properties": {
                "courseId": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "Subject": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "subj_1718000000000_a9k2x"},
                "course_id": {"type": "string", "x-nullable": true},
                "name": {"type": "string", "x-nullable": true},
                "created_at": {"type": "string", "format": "date-time", "x-nullable": true}
            }
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string", "x-nullable": true},
                "email": {"type": "string", "x-nullable": true},
                "phone": {"type": "string", "x-nullable": true},
                "role": {"type": "string", "x-nullable": true},
                "approved": {"type": "boolean"}
            }
        },
        "Enrollment": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "course_id": {"type": "string"},
                "course_name": {"type": "string", "x-nullable": true}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"}
            }
        },
        "CreatedResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "id": {"type": "string"},
                "message": {"type": "string", "example": "Subject created"}
            }
        },
        "SubjectListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "subjects": {"type": "array", "items": {"$ref": "#/definitions/Subject"}}
            }
        },
        "UserInspectionResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "user": {"$ref": "#/definitions/User"},
                "enrollments": {"type": "array", "items": {"$ref": "#/definitions/Enrollment"}}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
