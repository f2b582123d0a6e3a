package repository

import (
	"context"

	"planner-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PlanRepository struct {
	Col *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{Col: db.Collection("plans")}
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*models.StudyPlan, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var plan models.StudyPlan
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepository) FindByUser(ctx context.Context, userID string) ([]models.StudyPlan, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.StudyPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepository) Create(ctx context.Context, plan *models.StudyPlan) error {
	res, err := r.Col.InsertOne(ctx, plan)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		plan.ID = oid.Hex()
	}
	return nil
}

func (r *PlanRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
