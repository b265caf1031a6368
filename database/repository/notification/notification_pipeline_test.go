package notificationRepo

import (
	"testing"

	"quickhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func boolPtr(v bool) *bool { return &v }

func companyMatch(t *testing.T, criteria CompanyListCriteria) bson.M {
	t.Helper()
	pipeline := buildCompanyPipeline(criteria)
	require.Len(t, pipeline, 1)
	match, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	return match
}

func TestBuildCompanyPipelineDefaultsToBookingRequests(t *testing.T) {
	match := companyMatch(t, CompanyListCriteria{UserID: "user-1"})

	assert.Equal(t, models.NotificationBookingRequest, match["type"])
	or, ok := match["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 1)
	assert.Equal(t, bson.M{"userId": "user-1"}, or[0])
}

func TestBuildCompanyPipelineIncludesCompanyIDs(t *testing.T) {
	match := companyMatch(t, CompanyListCriteria{
		UserID:     "user-1",
		CompanyIDs: []string{"c1", "c2"},
		Types:      []string{"booking_request", "company_response_needed"},
		IsRead:     boolPtr(false),
	})

	or, ok := match["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"companyId": bson.M{"$in": []string{"c1", "c2"}}}, or[1])

	assert.Equal(t, bson.M{"$in": []string{"booking_request", "company_response_needed"}}, match["type"])
	assert.Equal(t, false, match["isRead"])
}

func TestCreatedAtSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}}, createdAtSort("date_asc"))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, createdAtSort("date_desc"))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, createdAtSort(""))
}
