// Package docs registers the swagger description served at /swagger/index.html.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/register": {
            "get": {"tags": ["Auth"], "summary": "Registration page", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["Auth"], "summary": "Register an account",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "string", "name": "first_name", "in": "formData", "required": true},
                    {"type": "string", "name": "last_name", "in": "formData", "required": true},
                    {"type": "string", "name": "gender", "in": "formData", "required": true, "enum": ["Male", "Female"]},
                    {"type": "string", "name": "birth_date", "in": "formData", "required": true},
                    {"type": "string", "name": "phone", "in": "formData", "required": true},
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "confirm_password", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "form re-rendered with errors"}, "302": {"description": "redirect to /login"}}
            }
        },
        "/login": {
            "get": {"tags": ["Auth"], "summary": "Login page", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["Auth"], "summary": "Log in",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "form re-rendered with errors"}, "302": {"description": "redirect to /dashboard or /user"}, "429": {"description": "rate limited"}}
            }
        },
        "/logout": {"get": {"tags": ["Auth"], "summary": "Log out", "responses": {"302": {"description": "redirect to /login"}}}},
        "/dashboard": {"get": {"tags": ["Admin"], "summary": "Admin dashboard", "responses": {"200": {"description": "OK"}}}},
        "/admin/cities": {"get": {"tags": ["Cities"], "summary": "City listing", "responses": {"200": {"description": "OK"}}}},
        "/admin/cities/add": {"post": {"tags": ["Cities"], "summary": "Add a city", "parameters": [{"type": "string", "name": "name", "in": "formData", "required": true}], "responses": {"302": {"description": "redirect to /admin/cities"}}}},
        "/admin/cities/edit/{id}": {"post": {"tags": ["Cities"], "summary": "Rename a city", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "name", "in": "formData", "required": true}], "responses": {"302": {"description": "redirect to /admin/cities"}}}},
        "/admin/cities/delete/{id}": {"post": {"tags": ["Cities"], "summary": "Delete a city and its areas", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"302": {"description": "redirect to /admin/cities"}}}},
        "/admin/areas": {"get": {"tags": ["Areas"], "summary": "Area listing", "responses": {"200": {"description": "OK"}}}},
        "/admin/areas/add": {"post": {"tags": ["Areas"], "summary": "Add an area", "parameters": [{"type": "string", "name": "name", "in": "formData", "required": true}, {"type": "integer", "name": "city_id", "in": "formData", "required": true}], "responses": {"302": {"description": "redirect to /admin/areas"}}}},
        "/admin/areas/edit/{id}": {"post": {"tags": ["Areas"], "summary": "Edit an area", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"type": "string", "name": "name", "in": "formData", "required": true}, {"type": "integer", "name": "city_id", "in": "formData", "required": true}], "responses": {"302": {"description": "redirect to /admin/areas"}}}},
        "/admin/areas/delete/{id}": {"post": {"tags": ["Areas"], "summary": "Delete an area", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"302": {"description": "redirect to /admin/areas"}}}},
        "/admin/404": {"get": {"tags": ["User"], "summary": "Admin boundary page", "responses": {"200": {"description": "OK"}}}},
        "/user": {"get": {"tags": ["User"], "summary": "User landing page", "responses": {"200": {"description": "OK"}}}},
        "/user/404": {"get": {"tags": ["User"], "summary": "User boundary page", "responses": {"200": {"description": "OK"}}}},
        "/api/ping": {"get": {"tags": ["Health"], "summary": "Ping", "responses": {"200": {"description": "OK"}}}},
        "/api/health/status": {"get": {"tags": ["Health"], "summary": "Dependency status", "responses": {"200": {"description": "OK"}, "503": {"description": "a dependency is down"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pharmacy Admin Service",
	Description:      "Administration pages for the pharmacy locator: accounts, cities and areas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
