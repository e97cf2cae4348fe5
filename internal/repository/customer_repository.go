package repository

import (
	"order_tracker/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	GetByAccountNumber(accountNumber string) (*models.Customer, error)
	GetByPhoneNumber(phoneNumber string) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	RecentNumbersWithPrefix(prefix string, limit int) ([]string, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return translateDuplicate(r.db.Create(customer).Error)
}

func (r *customerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByAccountNumber(accountNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("account_number = ?", accountNumber).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByPhoneNumber(phoneNumber string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("phone_number = ?", phoneNumber).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) RecentNumbersWithPrefix(prefix string, limit int) ([]string, error) {
	var numbers []string
	err := r.db.Model(&models.Customer{}).
		Where("account_number LIKE ?", prefix+"%").
		Order("id DESC").
		Limit(limit).
		Pluck("account_number", &numbers).Error
	return numbers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return translateDuplicate(r.db.Save(customer).Error)
}

func (r *customerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
