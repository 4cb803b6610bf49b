package handlers

// @title Plantillas CRUD API
// @version 1.0
// @description Create, read and replace document templates (plantillas)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @tag.name plantilla
// @tag.description Template management operations
