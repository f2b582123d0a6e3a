package repository

import (
	"context"

	"planner-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository struct {
	Col *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{Col: db.Collection("availability")}
}

func (r *AvailabilityRepository) FindByPlan(ctx context.Context, planID string) ([]models.AvailabilityWindow, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"plan_id": planID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *AvailabilityRepository) Create(ctx context.Context, window *models.AvailabilityWindow) error {
	res, err := r.Col.InsertOne(ctx, window)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		window.ID = oid.Hex()
	}
	return nil
}

func (r *AvailabilityRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

func (r *AvailabilityRepository) DeleteByPlan(ctx context.Context, planID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"plan_id": planID})
	return err
}
