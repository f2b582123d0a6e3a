package repository

import (
	"context"

	"planner-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DisciplineRepository struct {
	Col *mongo.Collection
}

func NewDisciplineRepository(db *mongo.Database) *DisciplineRepository {
	return &DisciplineRepository{Col: db.Collection("disciplines")}
}

func (r *DisciplineRepository) FindByID(ctx context.Context, id string) (*models.Discipline, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var discipline models.Discipline
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&discipline)
	if err != nil {
		return nil, err
	}
	return &discipline, nil
}

func (r *DisciplineRepository) FindByPlan(ctx context.Context, planID string) ([]models.Discipline, error) {
	cursor, err := r.Col.Find(ctx, bson.M{"plan_id": planID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var disciplines []models.Discipline
	if err := cursor.All(ctx, &disciplines); err != nil {
		return nil, err
	}
	return disciplines, nil
}

func (r *DisciplineRepository) Create(ctx context.Context, discipline *models.Discipline) error {
	res, err := r.Col.InsertOne(ctx, discipline)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		discipline.ID = oid.Hex()
	}
	return nil
}

func (r *DisciplineRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *DisciplineRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
