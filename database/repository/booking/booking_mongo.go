package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"quickhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateReference is returned when an insert collides on the unique
// referenceNo index. Callers regenerate the reference and retry.
var ErrDuplicateReference = fmt.Errorf("booking reference number already exists")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "referenceNo", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "startDate", Value: -1}}},
		{Keys: bson.D{{Key: "staffId", Value: 1}, {Key: "status", Value: 1}, {Key: "startDate", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReference
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByCustomer(criteria CustomerListCriteria) ([]CustomerBookingRow, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := buildCustomerPipeline(criteria)

	countPipeline := append(append(mongo.Pipeline{}, base...), bson.D{{Key: "$count", Value: "total"}})
	total, err := runCount(ctx, r.coll, countPipeline)
	if err != nil {
		return nil, 0, err
	}

	pipeline := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$sort", Value: dateSort(criteria.Sort)}},
		bson.D{{Key: "$skip", Value: criteria.Skip}},
		bson.D{{Key: "$limit", Value: criteria.Limit}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("customer bookings query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []CustomerBookingRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return rows, total, nil
}

func (r *MongoBookingRepo) ListDashboard(criteria DashboardCriteria) ([]DashboardRow, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := buildDashboardPipeline(criteria)

	countPipeline := append(append(mongo.Pipeline{}, base...), bson.D{{Key: "$count", Value: "total"}})
	total, err := runCount(ctx, r.coll, countPipeline)
	if err != nil {
		return nil, 0, err
	}

	pipeline := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$sort", Value: dateSort(criteria.Sort)}},
		bson.D{{Key: "$skip", Value: criteria.Skip}},
		bson.D{{Key: "$limit", Value: criteria.Limit}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("dashboard bookings query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []DashboardRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return rows, total, nil
}

// ConfirmPending flips a pending booking to Confirmed. The status guard lives
// in the filter so concurrent manage calls cannot both succeed.
func (r *MongoBookingRepo) ConfirmPending(id string, now time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.BookingPending},
		bson.M{
			"$set":   bson.M{"status": models.BookingConfirmed, "acceptedAt": now, "updatedAt": now},
			"$unset": bson.M{"rejectionReason": "", "rejectedAt": ""},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to confirm booking with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}

// RejectPending flips a pending booking to Rejected with the given reason.
func (r *MongoBookingRepo) RejectPending(id, reason string, now time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "status": models.BookingPending},
		bson.M{
			"$set":   bson.M{"status": models.BookingRejected, "rejectionReason": reason, "rejectedAt": now, "updatedAt": now},
			"$unset": bson.M{"acceptedAt": ""},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to reject booking with id %s: %w", id, err)
	}
	return result.MatchedCount > 0, nil
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
