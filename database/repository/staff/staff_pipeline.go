package staffRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// buildListPipeline composes the filter stages shared by the company and
// customer staff listings. Sorting and pagination are appended by the caller
// so the same stages can feed a $count.
func buildListPipeline(criteria ListCriteria) mongo.Pipeline {
	pipeline := mongo.Pipeline{}

	if criteria.ActiveOnly {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"isActive": true}}})
	}

	match := bson.M{}
	if criteria.EmploymentType != "" {
		match["employmentType"] = criteria.EmploymentType
	}
	if len(criteria.Services) > 0 {
		match["specializations"] = bson.M{"$in": criteria.Services}
	}
	if criteria.MinExp != nil || criteria.MaxExp != nil {
		exp := bson.M{}
		if criteria.MinExp != nil {
			exp["$gte"] = *criteria.MinExp
		}
		if criteria.MaxExp != nil {
			exp["$lte"] = *criteria.MaxExp
		}
		match["experienceYears"] = exp
	}
	if criteria.MinRating != nil {
		match["rating"] = bson.M{"$gte": *criteria.MinRating}
	}
	if criteria.PriceMin != nil || criteria.PriceMax != nil {
		price := bson.M{}
		if criteria.PriceMin != nil {
			price["$gte"] = *criteria.PriceMin
		}
		if criteria.PriceMax != nil {
			price["$lte"] = *criteria.PriceMax
		}
		match["hourlyRate"] = price
	}
	if criteria.CompanyID != "" {
		match["companyId"] = criteria.CompanyID
	}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	if criteria.Search != "" {
		re := primitive.Regex{Pattern: criteria.Search, Options: "i"}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"name": re},
				bson.M{"email": re},
				bson.M{"phone": re},
				bson.M{"specializations": re},
				bson.M{"bio": re},
				bson.M{"description": re},
				bson.M{"location.address": re},
				bson.M{"location.city": re},
			},
		}}})
	}

	return pipeline
}

// sortForCriteria maps the sort vocabulary to a sort document. Unknown values
// fall back to newest-first.
func sortForCriteria(sort string) bson.D {
	switch sort {
	case "price_asc":
		return bson.D{{Key: "hourlyRate", Value: 1}}
	case "price_desc":
		return bson.D{{Key: "hourlyRate", Value: -1}}
	case "rating_asc":
		return bson.D{{Key: "rating", Value: 1}}
	case "rating_desc":
		return bson.D{{Key: "rating", Value: -1}}
	case "exp_asc":
		return bson.D{{Key: "experienceYears", Value: 1}}
	case "exp_desc":
		return bson.D{{Key: "experienceYears", Value: -1}}
	case "createdAt_asc":
		return bson.D{{Key: "createdAt", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
