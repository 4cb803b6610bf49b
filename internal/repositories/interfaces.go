package repositories

import (
	"context"

	"plantillas-crud-api/internal/models"
)

// PlantillaRepository defines the operations available on the plantilla collection.
// Identifiers are the hex form of the database-generated _id.
type PlantillaRepository interface {
	// Insert stores a new plantilla and returns its generated identifier
	Insert(ctx context.Context, plantilla *models.Plantilla) (string, error)

	// FindByID retrieves a stored plantilla by its generated identifier
	FindByID(ctx context.Context, id string) (models.Document, error)

	// FindAll retrieves every stored plantilla
	FindAll(ctx context.Context) ([]models.Document, error)

	// Replace overwrites every modeled field of the plantilla with the given id
	Replace(ctx context.Context, id string, plantilla *models.Plantilla) error
}
