package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"plantillas-crud-api/internal/models"
	"plantillas-crud-api/internal/repositories"
)

const entity = "plantilla"

// PlantillaRepository implements repositories.PlantillaRepository on a MongoDB collection
type PlantillaRepository struct {
	collection *mongo.Collection
}

// NewPlantillaRepository creates a repository over the given collection
func NewPlantillaRepository(collection *mongo.Collection) *PlantillaRepository {
	return &PlantillaRepository{collection: collection}
}

// Insert stores a new plantilla and returns its generated identifier
func (r *PlantillaRepository) Insert(ctx context.Context, plantilla *models.Plantilla) (string, error) {
	result, err := r.collection.InsertOne(ctx, plantilla)
	if err != nil {
		return "", repositories.NewRepositoryError("insert", entity, "", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", repositories.NewRepositoryError("insert", entity, "",
			fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}

	return oid.Hex(), nil
}

// FindByID retrieves a stored plantilla by its generated identifier
func (r *PlantillaRepository) FindByID(ctx context.Context, id string) (models.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, repositories.NewRepositoryError("find", entity, id, err)
	}

	var doc bson.M
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.NewRepositoryError("find", entity, id, repositories.ErrNotFound)
		}
		return nil, repositories.NewRepositoryError("find", entity, id, err)
	}

	return models.Document(doc), nil
}

// FindAll retrieves every stored plantilla
func (r *PlantillaRepository) FindAll(ctx context.Context) ([]models.Document, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, repositories.NewRepositoryError("find_all", entity, "", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, repositories.NewRepositoryError("find_all", entity, "", err)
	}

	result := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		result = append(result, models.Document(doc))
	}

	return result, nil
}

// Replace sets every modeled field of the plantilla with the given id
func (r *PlantillaRepository) Replace(ctx context.Context, id string, plantilla *models.Plantilla) error {
	oid, err := objectID(id)
	if err != nil {
		return repositories.NewRepositoryError("update", entity, id, err)
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": plantilla})
	if err != nil {
		return repositories.NewRepositoryError("update", entity, id, err)
	}

	if result.MatchedCount == 0 {
		return repositories.NewRepositoryError("update", entity, id, repositories.ErrNotFound)
	}

	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", repositories.ErrInvalidID, id)
	}
	return oid, nil
}
