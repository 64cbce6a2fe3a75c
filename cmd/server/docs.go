package main

// @title CrateSpace API
// @version 1.0
// @description Inventory and order management API with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/cratespace/cratespace
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/cratespace/cratespace/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Inventory
// @tag.description Inventory management endpoints

// @tag.name Orders
// @tag.description Order placement and lifecycle endpoints

// @tag.name Dashboard
// @tag.description Aggregated operational statistics

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
