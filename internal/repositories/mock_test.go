package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantillas-crud-api/internal/models"
)

func samplePlantilla(nombre string) *models.Plantilla {
	return &models.Plantilla{
		ID:            1,
		Nombre:        nombre,
		Descripcion:   "d",
		Secciones:     models.Seccion{ID: 1},
		Minutas:       models.Minuta{ID: 1},
		Titulos:       models.Titulo{ID: 1},
		Imagenes:      models.Imagen{ID: 1},
		EnlaceDoc:     "http://x",
		Version:       1.0,
		FechaCreacion: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Activo:        true,
	}
}

func TestMockPlantillaRepository_InsertAndFind(t *testing.T) {
	repo := NewMockPlantillaRepository()
	ctx := context.Background()

	id, err := repo.Insert(ctx, samplePlantilla("T1"))
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Fatalf("Expected hex ObjectID, got %q", id)
	}

	doc, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if doc["nombre"] != "T1" {
		t.Errorf("Expected nombre T1, got %v", doc["nombre"])
	}
	if _, ok := doc["_id"].(primitive.ObjectID); !ok {
		t.Errorf("Expected ObjectID _id, got %T", doc["_id"])
	}
	if _, ok := doc["fechaCreacion"].(primitive.DateTime); !ok {
		t.Errorf("Expected DateTime fechaCreacion, got %T", doc["fechaCreacion"])
	}

	doc["nombre"] = "mutated"
	again, _ := repo.FindByID(ctx, id)
	if again["nombre"] != "T1" {
		t.Error("Expected reads to return copies")
	}
}

func TestMockPlantillaRepository_FindErrors(t *testing.T) {
	repo := NewMockPlantillaRepository()
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, "zzz"); !IsInvalidID(err) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}
	if _, err := repo.FindByID(ctx, primitive.NewObjectID().Hex()); !IsNotFound(err) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	repo.FindErr = errors.New("timeout")
	_, err := repo.FindByID(ctx, primitive.NewObjectID().Hex())
	var repoErr *RepositoryError
	if !errors.As(err, &repoErr) || repoErr.Op != "find" {
		t.Errorf("Expected RepositoryError for find, got %v", err)
	}
}

func TestMockPlantillaRepository_FindAllKeepsInsertOrder(t *testing.T) {
	repo := NewMockPlantillaRepository()
	ctx := context.Background()

	all, err := repo.FindAll(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("Expected empty result, got %v, %v", all, err)
	}

	for _, name := range []string{"A", "B", "C"} {
		if _, err := repo.Insert(ctx, samplePlantilla(name)); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	all, err = repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3 || all[0]["nombre"] != "A" || all[2]["nombre"] != "C" {
		t.Errorf("Unexpected FindAll result: %v", all)
	}
}

func TestMockPlantillaRepository_Replace(t *testing.T) {
	repo := NewMockPlantillaRepository()
	ctx := context.Background()

	id, _ := repo.Insert(ctx, samplePlantilla("T1"))

	if err := repo.Replace(ctx, id, samplePlantilla("T2")); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	doc, _ := repo.FindByID(ctx, id)
	if doc["nombre"] != "T2" {
		t.Errorf("Expected nombre T2, got %v", doc["nombre"])
	}
	if doc["_id"].(primitive.ObjectID).Hex() != id {
		t.Error("Expected _id to survive replacement")
	}

	if err := repo.Replace(ctx, primitive.NewObjectID().Hex(), samplePlantilla("T3")); !IsNotFound(err) {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
	if repo.Count() != 1 {
		t.Errorf("Expected no upsert, got %d records", repo.Count())
	}
}
