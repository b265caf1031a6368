package staffRepo

import (
	"context"
	"fmt"
	"time"

	"quickhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo(db *mongo.Database) StaffRepository {
	repo := &MongoStaffRepo{coll: db.Collection("staff")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "employmentType", Value: 1}}},
		{Keys: bson.D{{Key: "specializations", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) Create(staff *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Replace(staff *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": staff.ID}, staff)
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", staff.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", staff.ID)
	}
	return nil
}

// List runs the staff listing pipeline twice: once with a $count stage for the
// total and once with sort/skip/limit for the page.
func (r *MongoStaffRepo) List(criteria ListCriteria) ([]models.Staff, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	base := buildListPipeline(criteria)

	countPipeline := append(append(mongo.Pipeline{}, base...), bson.D{{Key: "$count", Value: "total"}})
	total, err := runCount(ctx, r.coll, countPipeline)
	if err != nil {
		return nil, 0, err
	}

	pipeline := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$sort", Value: sortForCriteria(criteria.Sort)}},
		bson.D{{Key: "$skip", Value: criteria.Skip}},
		bson.D{{Key: "$limit", Value: criteria.Limit}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("staff list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, 0, fmt.Errorf("failed to decode staff: %w", err)
	}
	return staff, total, nil
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
