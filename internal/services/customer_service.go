package services

import (
	"errors"
	"strings"

	"order_tracker/internal/models"
	"order_tracker/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UpdateCustomerInput carries a partial customer update. A non-nil
// Password is re-hashed before storage.
type UpdateCustomerInput struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Password    *string `json:"password"`
}

type CustomerService interface {
	CreateCustomer(customer *models.Customer, password string) (*models.Customer, error)
	GetCustomer(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	GetCustomerOrders(id uint) ([]models.Order, error)
	UpdateCustomer(id uint, input *UpdateCustomerInput) (*models.Customer, error)
	DeleteCustomer(id uint) error
	ChangePassword(id uint, currentPassword, newPassword string) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	sequences    SequenceService
}

func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository, sequences SequenceService) CustomerService {
	return &customerService{customerRepo: customerRepo, orderRepo: orderRepo, sequences: sequences}
}

func (s *customerService) CreateCustomer(customer *models.Customer, password string) (*models.Customer, error) {
	customer.AccountNumber = strings.TrimSpace(customer.AccountNumber)
	if customer.AccountNumber == "" {
		number, err := s.sequences.NextAccountNumber()
		if err != nil {
			return nil, err
		}
		customer.AccountNumber = number
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	customer.Password = string(hashed)

	if err := s.customerRepo.Create(customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateAccountNumber
		}
		return nil, err
	}

	log.Info().Str("account_number", customer.AccountNumber).Msg("customer created")
	return customer, nil
}

func (s *customerService) GetCustomer(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return customer, err
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

// GetCustomerOrders matches on the customer link or the customer's
// phone number, so orders created before linking existed still show up.
func (s *customerService) GetCustomerOrders(id uint) ([]models.Order, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetByCustomer(customer.ID, customer.PhoneNumber)
}

func (s *customerService) UpdateCustomer(id uint, input *UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		customer.PhoneNumber = *input.PhoneNumber
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.Password = string(hashed)
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	err := s.customerRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *customerService) ChangePassword(id uint, currentPassword, newPassword string) error {
	customer, err := s.GetCustomer(id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(currentPassword)) != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customer.Password = string(hashed)
	return s.customerRepo.Update(customer)
}
