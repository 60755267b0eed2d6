package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// MongoRecipeRepository implements RecipeRepository on MongoDB. It is used
// when persistence is enabled; the in-memory repository is the default.
type MongoRecipeRepository struct {
	collection *mongo.Collection
}

// NewMongoRecipeRepository creates a recipe repository backed by MongoDB.
func NewMongoRecipeRepository(db *MongoDB) *MongoRecipeRepository {
	return &MongoRecipeRepository{
		collection: db.Recipes,
	}
}

// GetRecipe returns the recipe with the given id, or (nil, nil) if absent.
func (r *MongoRecipeRepository) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns all recipes ordered by id.
func (r *MongoRecipeRepository) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var recipes []model.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Upsert stores the recipe, replacing any existing document with the same id.
func (r *MongoRecipeRepository) Upsert(ctx context.Context, recipe model.Recipe) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": recipe.ID},
		recipe,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the recipe with the given id and reports whether it existed.
func (r *MongoRecipeRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
