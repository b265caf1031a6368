package bookingRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": "id",
		"as":           as,
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       path,
		"preserveNullAndEmptyArrays": true,
	}}}
}

// buildCustomerPipeline matches a customer's bookings and joins the staff
// profile for display fields.
func buildCustomerPipeline(criteria CustomerListCriteria) mongo.Pipeline {
	match := bson.M{"userId": criteria.UserID}
	if len(criteria.Services) > 0 {
		match["service"] = bson.M{"$in": criteria.Services}
	}
	if len(criteria.Statuses) > 0 {
		match["status"] = bson.M{"$in": criteria.Statuses}
	}

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		lookupStage("staff", "staffId", "staff"),
		unwindStage("$staff"),
	}
}

// buildDashboardPipeline matches bookings for the company dashboard, joining
// staff and customer records so free-text search can cover their names.
func buildDashboardPipeline(criteria DashboardCriteria) mongo.Pipeline {
	match := bson.M{}
	if len(criteria.Statuses) > 0 {
		match["status"] = bson.M{"$in": criteria.Statuses}
	}
	if criteria.StartDate != nil || criteria.EndDate != nil {
		dateRange := bson.M{}
		if criteria.StartDate != nil {
			dateRange["$gte"] = *criteria.StartDate
		}
		if criteria.EndDate != nil {
			dateRange["$lte"] = *criteria.EndDate
		}
		match["startDate"] = dateRange
	}
	if criteria.Location != "" {
		match["location.address"] = primitive.Regex{Pattern: criteria.Location, Options: "i"}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		lookupStage("staff", "staffId", "staff"),
		unwindStage("$staff"),
		lookupStage("users", "userId", "customer"),
		unwindStage("$customer"),
	}

	if criteria.Search != "" {
		re := primitive.Regex{Pattern: criteria.Search, Options: "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"customer.name": re},
				bson.M{"staff.name": re},
				bson.M{"service": re},
				bson.M{"referenceNo": re},
				bson.M{"location.address": re},
			},
		}}})
	}

	return pipeline
}

// dateSort orders by startDate then createdAt; descending unless date_asc.
func dateSort(sort string) bson.D {
	if sort == "date_asc" {
		return bson.D{{Key: "startDate", Value: 1}, {Key: "createdAt", Value: 1}}
	}
	return bson.D{{Key: "startDate", Value: -1}, {Key: "createdAt", Value: -1}}
}
