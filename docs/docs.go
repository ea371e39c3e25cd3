// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

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
        "/home": {"get": {"tags": ["Views"], "summary": "All tasks ordered by date", "responses": {"200": {"description": "OK"}}}},
        "/tasks": {
            "get": {"tags": ["Views"], "summary": "Tasks grouped by date", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Tasks"], "summary": "Add a task", "parameters": [{"in": "body", "name": "task", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Empty title or date"}}}
        },
        "/tasks/{id}": {"put": {"tags": ["Tasks"], "summary": "Edit a task", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "task", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}}},
        "/tasks/undo": {"post": {"tags": ["Tasks"], "summary": "Restore the last deleted task", "responses": {"200": {"description": "OK"}, "409": {"description": "Nothing to undo"}}}},
        "/dates/{date}/tasks": {"get": {"tags": ["Views"], "summary": "Tasks of one date ordered by time", "parameters": [{"in": "path", "name": "date", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/dates/{date}/tasks/{id}": {"delete": {"tags": ["Tasks"], "summary": "Delete a task", "parameters": [{"in": "path", "name": "date", "type": "string", "required": true}, {"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "Deleted task"}, "404": {"description": "Task not found"}}}},
        "/dates/{date}/tasks/{id}/toggle": {"post": {"tags": ["Tasks"], "summary": "Toggle completion", "parameters": [{"in": "path", "name": "date", "type": "string", "required": true}, {"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}}},
        "/courses": {
            "get": {"tags": ["Courses"], "summary": "Courses with colors", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Courses"], "summary": "Add a course", "parameters": [{"in": "body", "name": "course", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Empty name"}}}
        },
        "/courses/{id}": {
            "put": {"tags": ["Courses"], "summary": "Rename a course", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}},
            "delete": {"tags": ["Courses"], "summary": "Delete a course", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Course not found"}}}
        },
        "/courses/{id}/color": {"put": {"tags": ["Courses"], "summary": "Set a course color", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Course not found"}}}}
    },
    "definitions": {
        "TaskRequest": {"type": "object", "properties": {"date": {"type": "string", "example": "2024-03-01"}, "title": {"type": "string"}, "course_id": {"type": "string"}, "time": {"type": "string", "example": "09:30"}}},
        "CourseRequest": {"type": "object", "properties": {"name": {"type": "string"}, "professor": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Study Planner API",
	Description:      "Tasks scheduled by date, courses and course colors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
