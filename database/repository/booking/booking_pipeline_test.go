package bookingRepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildCustomerPipeline(t *testing.T) {
	pipeline := buildCustomerPipeline(CustomerListCriteria{
		UserID:   "user-1",
		Services: []string{"Cook"},
		Statuses: []string{"Pending", "Confirmed"},
	})
	require.Len(t, pipeline, 3)

	match, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "user-1", match["userId"])
	assert.Equal(t, bson.M{"$in": []string{"Cook"}}, match["service"])
	assert.Equal(t, bson.M{"$in": []string{"Pending", "Confirmed"}}, match["status"])

	lookup, ok := pipeline[1][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "staff", lookup["from"])
	assert.Equal(t, "staffId", lookup["localField"])
	assert.Equal(t, "id", lookup["foreignField"])
}

func TestBuildDashboardPipeline(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	pipeline := buildDashboardPipeline(DashboardCriteria{
		Statuses:  []string{"Pending"},
		StartDate: &start,
		EndDate:   &end,
		Search:    "ravi",
	})
	// match + 2 lookups + 2 unwinds + search match
	require.Len(t, pipeline, 6)

	match, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$in": []string{"Pending"}}, match["status"])
	assert.Equal(t, bson.M{"$gte": start, "$lte": end}, match["startDate"])

	search, ok := pipeline[5][0].Value.(bson.M)
	require.True(t, ok)
	or, ok := search["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 5, "search covers customer, staff, service, reference and address")
}

func TestDateSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "startDate", Value: 1}, {Key: "createdAt", Value: 1}}, dateSort("date_asc"))
	assert.Equal(t, bson.D{{Key: "startDate", Value: -1}, {Key: "createdAt", Value: -1}}, dateSort("date_desc"))
	assert.Equal(t, bson.D{{Key: "startDate", Value: -1}, {Key: "createdAt", Value: -1}}, dateSort(""))
}
