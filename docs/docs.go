// Package docs registers the OpenAPI document served at /swagger/*any.
// Regenerate with: swag init -g cmd/main.go
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
        "/health": {"get": {"tags": ["system"], "summary": "Health check", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/ws": {"get": {"tags": ["status"], "summary": "Live status stream", "parameters": [
            {"type": "string", "description": "Go duration", "name": "interval", "in": "query"},
            {"type": "integer", "description": "Interval in milliseconds", "name": "interval_ms", "in": "query"}
        ], "responses": {"101": {"description": "Switching Protocols"}}}},
        "/api/v1/products": {"get": {"tags": ["catalogue"], "summary": "List products", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/phases": {"get": {"tags": ["catalogue"], "summary": "List growth phases", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/substrates": {"get": {"tags": ["catalogue"], "summary": "List substrates", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/schedule": {"get": {"tags": ["catalogue"], "summary": "Feeding schedule", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/schedule/{week}": {"get": {"tags": ["catalogue"], "summary": "Schedule row for a week", "parameters": [
            {"type": "integer", "description": "Grow week", "name": "week", "in": "path", "required": true}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/dosage": {"get": {"tags": ["dosage"], "summary": "Calculate a dosage plan", "parameters": [
            {"type": "number", "description": "Tank volume in liters", "name": "liters", "in": "query", "required": true},
            {"type": "integer", "description": "Grow week (1..16)", "name": "week", "in": "query"},
            {"enum": ["allMix", "lightMix", "cocoMix"], "type": "string", "description": "Substrate", "name": "substrate", "in": "query"}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}},
        "/api/v1/doses": {
            "get": {"tags": ["dosage"], "summary": "List dose logs", "parameters": [
                {"type": "string", "description": "Start of range", "name": "from", "in": "query"},
                {"type": "string", "description": "End of range, date-only means end of day", "name": "to", "in": "query"}
            ], "responses": {"200": {"description": "count, doses"}, "400": {"description": "Bad Request"}}},
            "post": {"tags": ["dosage"], "summary": "Log a fed mix", "consumes": ["application/json"], "parameters": [
                {"description": "Dose payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LogDoseRequest"}}
            ], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "500": {"description": "Internal Server Error"}}}
        },
        "/api/v1/status": {"get": {"tags": ["status"], "summary": "Classify a reading", "parameters": [
            {"type": "number", "name": "ec", "in": "query"},
            {"type": "number", "name": "ph", "in": "query"},
            {"type": "number", "name": "temp", "in": "query"},
            {"type": "number", "name": "soil", "in": "query"},
            {"type": "number", "name": "tank", "in": "query"},
            {"type": "integer", "name": "week", "in": "query"}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/status/live": {"get": {"tags": ["status"], "summary": "Live status", "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}}},
        "/api/v1/recommendations": {"get": {"tags": ["recommendations"], "summary": "Current recommendations", "responses": {"200": {"description": "count, recommendations"}}}},
        "/api/v1/recommendations/evaluate": {"post": {"tags": ["recommendations"], "summary": "Evaluate recommendations for a hypothetical grow", "consumes": ["application/json"], "parameters": [
            {"description": "Rule input", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EvaluateRequest"}}
        ], "responses": {"200": {"description": "count, recommendations"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/inventory": {"get": {"tags": ["inventory"], "summary": "List inventory", "parameters": [
            {"type": "integer", "description": "Grow week, omitted means the current week", "name": "week", "in": "query"}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/inventory/{product}": {"patch": {"tags": ["inventory"], "summary": "Update a bottle", "consumes": ["application/json"], "parameters": [
            {"type": "string", "description": "Product id", "name": "product", "in": "path", "required": true},
            {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateInventoryRequest"}}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/api/v1/inventory/{product}/refill": {"post": {"tags": ["inventory"], "summary": "Refill a bottle", "parameters": [
            {"type": "string", "description": "Product id", "name": "product", "in": "path", "required": true}
        ], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/plants": {
            "get": {"tags": ["plants"], "summary": "List active plants", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["plants"], "summary": "Add a plant", "consumes": ["application/json"], "parameters": [
                {"description": "Plant", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreatePlantRequest"}}
            ], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/telemetry": {
            "get": {"tags": ["telemetry"], "summary": "Latest controller snapshot", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["telemetry"], "summary": "Push a controller snapshot", "consumes": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/events": {"get": {"tags": ["events"], "summary": "List grow events", "parameters": [
            {"type": "string", "name": "from", "in": "query"},
            {"type": "string", "name": "to", "in": "query"},
            {"enum": ["ALERT", "RECOMMENDATION", "LOW_STOCK", "DOSE", "REFILL"], "type": "string", "name": "type", "in": "query"}
        ], "responses": {"200": {"description": "count, events"}, "400": {"description": "Bad Request"}}}}
    },
    "definitions": {
        "handlers.LogDoseRequest": {"type": "object", "required": ["liters"], "properties": {
            "liters": {"type": "number", "example": 10},
            "week": {"type": "integer", "example": 10},
            "substrate": {"type": "string", "example": "lightMix"},
            "notes": {"type": "string"}
        }},
        "handlers.EvaluateRequest": {"type": "object", "properties": {
            "ec_status": {"type": "string"},
            "ph_status": {"type": "string"},
            "current_ec": {"type": "number", "example": 2.9},
            "current_ph": {"type": "number", "example": 6.3},
            "tank_level": {"type": "number", "example": 45},
            "avg_soil_moisture": {"type": "number", "example": 38},
            "current_week": {"type": "integer", "example": 10},
            "now": {"type": "string"}
        }},
        "handlers.UpdateInventoryRequest": {"type": "object", "properties": {
            "owned": {"type": "boolean"},
            "bottle_size_ml": {"type": "number", "example": 500},
            "current_ml": {"type": "number", "example": 320}
        }},
        "handlers.CreatePlantRequest": {"type": "object", "required": ["name"], "properties": {
            "name": {"type": "string", "example": "Northern Lights #3"},
            "strain": {"type": "string"},
            "stage": {"type": "string", "example": "vegetative"},
            "planted_date": {"type": "string", "example": "2025-05-01"},
            "harvest_date": {"type": "string", "example": "2025-08-20"}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "growroom API",
	Description:      "BioBizz feeding schedule, dosage calculator and grow monitoring.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
