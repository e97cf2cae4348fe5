package services

import (
	"order_tracker/internal/models"

	"gorm.io/gorm"
)

type mockOrderRepo struct {
	CreateFunc        func(order *models.Order) error
	GetByIDFunc       func(id uint) (*models.Order, error)
	GetByNumberFunc   func(orderNumber string) (*models.Order, error)
	GetByPhoneFunc    func(phoneNumber string) ([]models.Order, error)
	GetByCustomerFunc func(customerID uint, phoneNumber string) ([]models.Order, error)
	GetAllFunc        func() ([]models.Order, error)
	SearchFunc        func(query string) ([]models.Order, error)
	RecentNumbersFunc func(prefix string, limit int) ([]string, error)
	UpdateFunc        func(order *models.Order) error
	DeleteFunc        func(id uint) error
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(order)
	}
	return nil
}

func (m *mockOrderRepo) GetByID(id uint) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) GetByNumber(orderNumber string) (*models.Order, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(orderNumber)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) GetByPhone(phoneNumber string) ([]models.Order, error) {
	if m.GetByPhoneFunc != nil {
		return m.GetByPhoneFunc(phoneNumber)
	}
	return nil, nil
}

func (m *mockOrderRepo) GetByCustomer(customerID uint, phoneNumber string) ([]models.Order, error) {
	if m.GetByCustomerFunc != nil {
		return m.GetByCustomerFunc(customerID, phoneNumber)
	}
	return nil, nil
}

func (m *mockOrderRepo) GetAll() ([]models.Order, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *mockOrderRepo) Search(query string) ([]models.Order, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(query)
	}
	return nil, nil
}

func (m *mockOrderRepo) RecentNumbersWithPrefix(prefix string, limit int) ([]string, error) {
	if m.RecentNumbersFunc != nil {
		return m.RecentNumbersFunc(prefix, limit)
	}
	return nil, nil
}

func (m *mockOrderRepo) Update(order *models.Order) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(order)
	}
	return nil
}

func (m *mockOrderRepo) Delete(id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type mockCustomerRepo struct {
	CreateFunc             func(customer *models.Customer) error
	GetByIDFunc            func(id uint) (*models.Customer, error)
	GetByAccountNumberFunc func(accountNumber string) (*models.Customer, error)
	GetByPhoneNumberFunc   func(phoneNumber string) (*models.Customer, error)
	GetAllFunc             func() ([]models.Customer, error)
	RecentNumbersFunc      func(prefix string, limit int) ([]string, error)
	UpdateFunc             func(customer *models.Customer) error
	DeleteFunc             func(id uint) error
}

func (m *mockCustomerRepo) Create(customer *models.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(customer)
	}
	return nil
}

func (m *mockCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) GetByAccountNumber(accountNumber string) (*models.Customer, error) {
	if m.GetByAccountNumberFunc != nil {
		return m.GetByAccountNumberFunc(accountNumber)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) GetByPhoneNumber(phoneNumber string) (*models.Customer, error) {
	if m.GetByPhoneNumberFunc != nil {
		return m.GetByPhoneNumberFunc(phoneNumber)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCustomerRepo) GetAll() ([]models.Customer, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *mockCustomerRepo) RecentNumbersWithPrefix(prefix string, limit int) ([]string, error) {
	if m.RecentNumbersFunc != nil {
		return m.RecentNumbersFunc(prefix, limit)
	}
	return nil, nil
}

func (m *mockCustomerRepo) Update(customer *models.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(customer)
	}
	return nil
}

func (m *mockCustomerRepo) Delete(id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type mockUserRepo struct {
	CreateFunc        func(user *models.User) error
	GetByIDFunc       func(id uint) (*models.User, error)
	GetByUsernameFunc func(username string) (*models.User, error)
}

func (m *mockUserRepo) Create(user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(username)
	}
	return nil, gorm.ErrRecordNotFound
}

type mockSettingsRepo struct {
	stored *models.Settings
}

func (m *mockSettingsRepo) Get() (*models.Settings, error) {
	return m.stored, nil
}

func (m *mockSettingsRepo) Upsert(settings *models.Settings) error {
	settings.ID = models.SettingsRowID
	m.stored = settings
	return nil
}

// fixedSettings serves a canned settings value without a database.
type fixedSettings struct {
	settings models.Settings
}

func (f *fixedSettings) GetWithDefaults() (*models.Settings, error) {
	s := f.settings
	s.ApplyDefaults()
	return &s, nil
}

func (f *fixedSettings) Update(settings *models.Settings) (*models.Settings, error) {
	f.settings = *settings
	return settings, nil
}

// fixedSequence returns predetermined generated numbers.
type fixedSequence struct {
	orderNumber   string
	accountNumber string
	err           error
}

func (f *fixedSequence) NextOrderNumber() (string, error) {
	return f.orderNumber, f.err
}

func (f *fixedSequence) NextAccountNumber() (string, error) {
	return f.accountNumber, f.err
}
