package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"Cook"}, splitCSV("Cook"))
	assert.Equal(t, []string{"Cook", "Cleaner"}, splitCSV("Cook, Cleaner"))
	assert.Equal(t, []string{"Cook"}, splitCSV(" , Cook , "))
}

func TestFloatQuery(t *testing.T) {
	c := contextFor(t, "minExp=2.5&bad=abc")

	v := floatQuery(c, "minExp")
	require.NotNil(t, v)
	assert.Equal(t, 2.5, *v)

	assert.Nil(t, floatQuery(c, "bad"))
	assert.Nil(t, floatQuery(c, "missing"))
}

func TestBoolQuery(t *testing.T) {
	c := contextFor(t, "isRead=false&junk=maybe")

	v := boolQuery(c, "isRead")
	require.NotNil(t, v)
	assert.False(t, *v)

	assert.Nil(t, boolQuery(c, "junk"))
	assert.Nil(t, boolQuery(c, "missing"))
}
