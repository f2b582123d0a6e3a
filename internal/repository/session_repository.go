package repository

import (
	"context"

	"planner-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{Col: db.Collection("sessions")}
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.StudySession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var session models.StudySession
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByPlan(ctx context.Context, planID string) ([]models.StudySession, error) {
	opts := options.Find().SetSort(bson.M{"scheduled_date": 1})
	cursor, err := r.Col.Find(ctx, bson.M{"study_plan_id": planID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.StudySession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

func (r *SessionRepository) CreateMany(ctx context.Context, sessions []models.StudySession) error {
	if len(sessions) == 0 {
		return nil
	}
	docs := make([]interface{}, len(sessions))
	for i := range sessions {
		docs[i] = sessions[i]
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *SessionRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}

// DeleteGeneratedByPlan removes previously generated sessions that were never
// completed, so a regeneration does not stack duplicates on the calendar.
func (r *SessionRepository) DeleteGeneratedByPlan(ctx context.Context, planID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{
		"study_plan_id": planID,
		"generated":     true,
		"completed":     false,
	})
	return err
}
