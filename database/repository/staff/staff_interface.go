package staffRepo

import "quickhub/models"

// ListCriteria carries the filter/sort/pagination vocabulary of the staff
// listing endpoints. Nil pointer fields mean "not filtered".
type ListCriteria struct {
	EmploymentType string
	Services       []string
	MinExp         *float64
	MaxExp         *float64
	MinRating      *float64
	PriceMin       *float64
	PriceMax       *float64
	CompanyID      string
	Search         string
	ActiveOnly     bool
	Sort           string
	Skip           int64
	Limit          int64
}

// StaffRepository defines persistence operations for staff profiles.
type StaffRepository interface {
	GetByID(id string) (*models.Staff, error)
	Create(staff *models.Staff) error
	Replace(staff *models.Staff) error
	List(criteria ListCriteria) ([]models.Staff, int64, error)
}
