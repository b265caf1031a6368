package handlers

import (
	"testing"

	"quickhub/models"
	staffSvc "quickhub/services/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStaffService struct {
	ListFn         func(staffSvc.ListQuery) ([]staffSvc.ListItem, int64, error)
	ListCustomerFn func(staffSvc.ListQuery) ([]staffSvc.CustomerListItem, int64, error)
}

func (m *mockStaffService) List(q staffSvc.ListQuery) ([]staffSvc.ListItem, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(q)
	}
	return nil, 0, nil
}

func (m *mockStaffService) ListCustomer(q staffSvc.ListQuery) ([]staffSvc.CustomerListItem, int64, error) {
	if m.ListCustomerFn != nil {
		return m.ListCustomerFn(q)
	}
	return nil, 0, nil
}

func (m *mockStaffService) Create(input staffSvc.CreateInput) (string, error) {
	return "", nil
}

func (m *mockStaffService) Update(id string, input staffSvc.UpdateInput) (*models.Staff, error) {
	return nil, nil
}

func (m *mockStaffService) CustomerDetails(id string) (*staffSvc.CustomerDetail, error) {
	return nil, nil
}

func (m *mockStaffService) CompanyDetails(id string) (*models.Company, error) {
	return nil, nil
}

func TestListStaffCustomerQueryMapping(t *testing.T) {
	var got staffSvc.ListQuery
	h := NewStaffHandler(&mockStaffService{
		ListCustomerFn: func(q staffSvc.ListQuery) ([]staffSvc.CustomerListItem, int64, error) {
			got = q
			return []staffSvc.CustomerListItem{}, 0, nil
		},
	})

	c := contextFor(t, "type=part_time&minExp=2&services=Cook,Cleaner&search=asha&sort=rating_desc")
	h.ListStaffCustomer(c)

	assert.Equal(t, "part_time", got.EmploymentType)
	require.NotNil(t, got.MinExp)
	assert.Equal(t, 2.0, *got.MinExp)
	assert.Equal(t, []string{"Cook", "Cleaner"}, got.Services)
	assert.Equal(t, "asha", got.Search)
	assert.Equal(t, "rating_desc", got.Sort)
}

func TestListStaffQueryMapping(t *testing.T) {
	var got staffSvc.ListQuery
	h := NewStaffHandler(&mockStaffService{
		ListFn: func(q staffSvc.ListQuery) ([]staffSvc.ListItem, int64, error) {
			got = q
			return []staffSvc.ListItem{}, 0, nil
		},
	})

	c := contextFor(t, "type=full_time&rating=4&company=c1&priceMin=100&priceMax=500")
	h.ListStaff(c)

	assert.Equal(t, "full_time", got.EmploymentType)
	require.NotNil(t, got.MinRating)
	assert.Equal(t, 4.0, *got.MinRating)
	assert.Equal(t, "c1", got.CompanyID)
	require.NotNil(t, got.PriceMin)
	assert.Equal(t, 100.0, *got.PriceMin)
	require.NotNil(t, got.PriceMax)
	assert.Equal(t, 500.0, *got.PriceMax)
}
