package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"quickhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo(db *mongo.Database) NotificationRepository {
	repo := &MongoNotificationRepo{coll: db.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create notification indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) Create(notification *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) List(criteria ListCriteria) ([]models.Notification, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	match := bson.M{"userId": criteria.UserID}
	if len(criteria.Types) > 0 {
		match["type"] = bson.M{"$in": criteria.Types}
	}
	if criteria.IsRead != nil {
		match["isRead"] = *criteria.IsRead
	}

	total, err := r.coll.CountDocuments(ctx, match)
	if err != nil {
		return nil, 0, fmt.Errorf("notification count failed: %w", err)
	}

	opts := options.Find().
		SetSort(createdAtSort(criteria.Sort)).
		SetSkip(criteria.Skip).
		SetLimit(criteria.Limit)

	cursor, err := r.coll.Find(ctx, match, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("notification list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, total, nil
}

func (r *MongoNotificationRepo) ListCompany(criteria CompanyListCriteria) ([]CompanyRow, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := buildCompanyPipeline(criteria)

	countPipeline := append(append(mongo.Pipeline{}, base...), bson.D{{Key: "$count", Value: "total"}})
	total, err := runCount(ctx, r.coll, countPipeline)
	if err != nil {
		return nil, 0, err
	}

	pipeline := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$sort", Value: createdAtSort(criteria.Sort)}},
		bson.D{{Key: "$skip", Value: criteria.Skip}},
		bson.D{{Key: "$limit", Value: criteria.Limit}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "bookings",
			"localField":   "bookingId",
			"foreignField": "id",
			"as":           "booking",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$booking", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "booking.userId",
			"foreignField": "id",
			"as":           "customer",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("company notifications query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []CompanyRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return rows, total, nil
}

func (r *MongoNotificationRepo) MarkRead(id, userID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification %s as read: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

func (r *MongoNotificationRepo) MarkAllRead(userID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateMany(ctx,
		bson.M{"userId": userID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return result.ModifiedCount, nil
}

// buildCompanyPipeline matches notifications for either the requesting user
// directly or any of the companies resolved for that user.
func buildCompanyPipeline(criteria CompanyListCriteria) mongo.Pipeline {
	conditions := bson.A{bson.M{"userId": criteria.UserID}}
	if len(criteria.CompanyIDs) > 0 {
		conditions = append(conditions, bson.M{"companyId": bson.M{"$in": criteria.CompanyIDs}})
	}

	match := bson.M{"$or": conditions}
	if len(criteria.Types) > 0 {
		match["type"] = bson.M{"$in": criteria.Types}
	} else {
		// Company inboxes default to incoming booking requests.
		match["type"] = models.NotificationBookingRequest
	}
	if criteria.IsRead != nil {
		match["isRead"] = *criteria.IsRead
	}

	return mongo.Pipeline{bson.D{{Key: "$match", Value: match}}}
}

func createdAtSort(sort string) bson.D {
	if sort == "date_asc" {
		return bson.D{{Key: "createdAt", Value: 1}}
	}
	return bson.D{{Key: "createdAt", Value: -1}}
}

func runCount(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) (int64, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
