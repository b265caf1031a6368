package booking

import (
	"time"

	bookingRepo "quickhub/database/repository/booking"
	notificationRepo "quickhub/database/repository/notification"
	staffRepo "quickhub/database/repository/staff"
	"quickhub/models"
)

type mockBookingRepo struct {
	CreateFn         func(*models.Booking) error
	GetByIDFn        func(string) (*models.Booking, error)
	ListByCustomerFn func(bookingRepo.CustomerListCriteria) ([]bookingRepo.CustomerBookingRow, int64, error)
	ListDashboardFn  func(bookingRepo.DashboardCriteria) ([]bookingRepo.DashboardRow, int64, error)
	ConfirmPendingFn func(string, time.Time) (bool, error)
	RejectPendingFn  func(string, string, time.Time) (bool, error)
}

func (m *mockBookingRepo) Create(b *models.Booking) error {
	if m.CreateFn != nil {
		return m.CreateFn(b)
	}
	return nil
}

func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	return nil, nil
}

func (m *mockBookingRepo) ListByCustomer(c bookingRepo.CustomerListCriteria) ([]bookingRepo.CustomerBookingRow, int64, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(c)
	}
	return nil, 0, nil
}

func (m *mockBookingRepo) ListDashboard(c bookingRepo.DashboardCriteria) ([]bookingRepo.DashboardRow, int64, error) {
	if m.ListDashboardFn != nil {
		return m.ListDashboardFn(c)
	}
	return nil, 0, nil
}

func (m *mockBookingRepo) ConfirmPending(id string, now time.Time) (bool, error) {
	if m.ConfirmPendingFn != nil {
		return m.ConfirmPendingFn(id, now)
	}
	return false, nil
}

func (m *mockBookingRepo) RejectPending(id, reason string, now time.Time) (bool, error) {
	if m.RejectPendingFn != nil {
		return m.RejectPendingFn(id, reason, now)
	}
	return false, nil
}

type mockStaffRepo struct {
	GetByIDFn func(string) (*models.Staff, error)
}

func (m *mockStaffRepo) GetByID(id string) (*models.Staff, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	return nil, nil
}

func (m *mockStaffRepo) Create(*models.Staff) error  { return nil }
func (m *mockStaffRepo) Replace(*models.Staff) error { return nil }
func (m *mockStaffRepo) List(staffRepo.ListCriteria) ([]models.Staff, int64, error) {
	return nil, 0, nil
}

type mockUserRepo struct {
	GetByIDFn func(string) (*models.User, error)
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	return nil, nil
}

type mockCompanyRepo struct {
	GetByIDFn func(string) (*models.Company, error)
}

func (m *mockCompanyRepo) GetByID(id string) (*models.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	return nil, nil
}

func (m *mockCompanyRepo) FindByEmail(string) ([]models.Company, error) { return nil, nil }

type mockNotificationRepo struct {
	CreateFn func(*models.Notification) error
	created  []*models.Notification
}

func (m *mockNotificationRepo) Create(n *models.Notification) error {
	m.created = append(m.created, n)
	if m.CreateFn != nil {
		return m.CreateFn(n)
	}
	return nil
}

func (m *mockNotificationRepo) List(notificationRepo.ListCriteria) ([]models.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepo) ListCompany(notificationRepo.CompanyListCriteria) ([]notificationRepo.CompanyRow, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationRepo) MarkRead(string, string) (bool, error) { return false, nil }
func (m *mockNotificationRepo) MarkAllRead(string) (int64, error)     { return 0, nil }
