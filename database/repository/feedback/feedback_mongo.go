package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"quickhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackRepository defines read operations against staff feedback.
type FeedbackRepository interface {
	ListRecentByStaff(staffID string, limit int64) ([]models.Feedback, error)
}

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo(db *mongo.Database) FeedbackRepository {
	return &MongoFeedbackRepo{coll: db.Collection("feedbacks")}
}

// ListRecentByStaff returns the newest feedback entries for a staff member.
func (r *MongoFeedbackRepo) ListRecentByStaff(staffID string, limit int64) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"staffId": staffID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find feedback for staff %s: %w", staffID, err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return feedbacks, nil
}
