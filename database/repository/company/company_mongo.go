package companyRepo

import (
	"context"
	"fmt"
	"time"

	"quickhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CompanyRepository defines read operations against company records.
type CompanyRepository interface {
	GetByID(id string) (*models.Company, error)
	FindByEmail(email string) ([]models.Company, error)
}

// MongoCompanyRepo implements CompanyRepository using MongoDB.
type MongoCompanyRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanyRepo creates a new instance of CompanyRepository using MongoDB.
func NewMongoCompanyRepo(db *mongo.Database) CompanyRepository {
	return &MongoCompanyRepo{coll: db.Collection("companies")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCompanyRepo) GetByID(id string) (*models.Company, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var company models.Company
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch company with id %s: %w", id, err)
	}
	return &company, nil
}

// FindByEmail resolves companies whose contact email matches the given
// address. Used as a best-effort linkage from a company user to its company.
func (r *MongoCompanyRepo) FindByEmail(email string) ([]models.Company, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find companies for email %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}
	return companies, nil
}
