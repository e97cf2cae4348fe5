package repository

import (
	"errors"
	"strings"

	"order_tracker/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when an insert or update violates a
// unique index. Services map it to the field-specific conflict error.
var ErrDuplicateKey = errors.New("duplicate key")

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByNumber(orderNumber string) (*models.Order, error)
	GetByPhone(phoneNumber string) ([]models.Order, error)
	GetByCustomer(customerID uint, phoneNumber string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	Search(query string) ([]models.Order, error)
	RecentNumbersWithPrefix(prefix string, limit int) ([]string, error)
	Update(order *models.Order) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return translateDuplicate(r.db.Create(order).Error)
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByPhone(phoneNumber string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("phone_number = ?", phoneNumber).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// GetByCustomer returns orders linked to the customer id plus orders
// that only match the customer's phone number. Older orders were
// created before customer linking existed and carry no customer_id.
func (r *orderRepository) GetByCustomer(customerID uint, phoneNumber string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("customer_id = ? OR phone_number = ?", customerID, phoneNumber).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Search(query string) ([]models.Order, error) {
	var orders []models.Order
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.Where(
		"LOWER(order_number) LIKE ? OR LOWER(phone_number) LIKE ? OR LOWER(customer_name) LIKE ?",
		pattern, pattern, pattern,
	).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// RecentNumbersWithPrefix returns the order numbers of the most
// recently inserted orders whose number starts with prefix, newest
// first. The limit bounds the sequence generator's lookback.
func (r *orderRepository) RecentNumbersWithPrefix(prefix string, limit int) ([]string, error) {
	var numbers []string
	err := r.db.Model(&models.Order{}).
		Where("order_number LIKE ?", prefix+"%").
		Order("id DESC").
		Limit(limit).
		Pluck("order_number", &numbers).Error
	return numbers, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return translateDuplicate(r.db.Save(order).Error)
}

func (r *orderRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func translateDuplicate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicateKey
	}
	return err
}
