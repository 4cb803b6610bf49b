package repositories

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantillas-crud-api/internal/models"
)

// MockPlantillaRepository is an in-memory implementation of PlantillaRepository
// for testing. Documents go through a BSON round trip so reads return the same
// value types the database driver does.
type MockPlantillaRepository struct {
	mu    sync.RWMutex
	docs  map[primitive.ObjectID]bson.M
	order []primitive.ObjectID

	// Errors, when set, are returned by the matching operation
	InsertErr   error
	FindErr     error
	FindAllErr  error
	ReplaceErr  error
	LastReplace *models.Plantilla
}

// NewMockPlantillaRepository creates an empty mock repository
func NewMockPlantillaRepository() *MockPlantillaRepository {
	return &MockPlantillaRepository{
		docs: make(map[primitive.ObjectID]bson.M),
	}
}

// Insert implements PlantillaRepository.Insert
func (m *MockPlantillaRepository) Insert(ctx context.Context, plantilla *models.Plantilla) (string, error) {
	if m.InsertErr != nil {
		return "", NewRepositoryError("insert", "plantilla", "", m.InsertErr)
	}

	doc, err := toDocument(plantilla)
	if err != nil {
		return "", NewRepositoryError("insert", "plantilla", "", err)
	}

	oid := primitive.NewObjectID()
	doc["_id"] = oid

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[oid] = doc
	m.order = append(m.order, oid)

	return oid.Hex(), nil
}

// FindByID implements PlantillaRepository.FindByID
func (m *MockPlantillaRepository) FindByID(ctx context.Context, id string) (models.Document, error) {
	if m.FindErr != nil {
		return nil, NewRepositoryError("find", "plantilla", id, m.FindErr)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewRepositoryError("find", "plantilla", id, ErrInvalidID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[oid]
	if !exists {
		return nil, NewRepositoryError("find", "plantilla", id, ErrNotFound)
	}

	return copyDocument(doc), nil
}

// FindAll implements PlantillaRepository.FindAll
func (m *MockPlantillaRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	if m.FindAllErr != nil {
		return nil, NewRepositoryError("find_all", "plantilla", "", m.FindAllErr)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Document, 0, len(m.order))
	for _, oid := range m.order {
		result = append(result, copyDocument(m.docs[oid]))
	}

	return result, nil
}

// Replace implements PlantillaRepository.Replace
func (m *MockPlantillaRepository) Replace(ctx context.Context, id string, plantilla *models.Plantilla) error {
	if m.ReplaceErr != nil {
		return NewRepositoryError("update", "plantilla", id, m.ReplaceErr)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewRepositoryError("update", "plantilla", id, ErrInvalidID)
	}

	doc, err := toDocument(plantilla)
	if err != nil {
		return NewRepositoryError("update", "plantilla", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.docs[oid]
	if !exists {
		return NewRepositoryError("update", "plantilla", id, ErrNotFound)
	}

	// $set semantics: modeled fields are overwritten, anything else is kept
	for k, v := range doc {
		existing[k] = v
	}
	m.LastReplace = plantilla

	return nil
}

// Count returns the number of stored documents
func (m *MockPlantillaRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func toDocument(plantilla *models.Plantilla) (bson.M, error) {
	raw, err := bson.Marshal(plantilla)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plantilla: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode plantilla: %w", err)
	}

	return doc, nil
}

func copyDocument(doc bson.M) models.Document {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil
	}

	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil
	}

	return models.Document(out)
}
