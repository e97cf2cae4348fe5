package services

import (
	"errors"
	"strings"
	"time"

	"order_tracker/internal/models"
	"order_tracker/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// UpdateOrderInput carries a partial order update. Nil fields are left
// untouched.
type UpdateOrderInput struct {
	CustomerID            *uint    `json:"customerId"`
	CustomerName          *string  `json:"customerName"`
	PhoneNumber           *string  `json:"phoneNumber"`
	OrderStatus           *string  `json:"orderStatus"`
	EstimatedDeliveryDate *string  `json:"estimatedDeliveryDate"`
	AdminNotes            *string  `json:"adminNotes"`
	OrderValue            *float64 `json:"orderValue"`
	ItemsCount            *int     `json:"itemsCount"`
	ShippingCost          *float64 `json:"shippingCost"`
}

type OrderService interface {
	CreateOrder(order *models.Order) (*models.Order, error)
	GetOrder(id uint) (*models.Order, error)
	GetOrderByNumber(orderNumber string) (*models.Order, error)
	GetOrdersByPhone(phoneNumber string) ([]models.Order, error)
	GetAllOrders() ([]models.Order, error)
	SearchOrders(query string) ([]models.Order, error)
	UpdateOrder(id uint, input *UpdateOrderInput) (*models.Order, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	sequences SequenceService
}

func NewOrderService(orderRepo repository.OrderRepository, sequences SequenceService) OrderService {
	return &orderService{orderRepo: orderRepo, sequences: sequences}
}

// CreateOrder persists a new order, generating the order number when
// the caller left it blank and seeding the status history with the
// initial status. An explicitly supplied number that already exists is
// rejected before the insert; a collision on a generated number (two
// creates racing past the same lookback) surfaces from the unique
// index as ErrDuplicateOrderNumber.
func (s *orderService) CreateOrder(order *models.Order) (*models.Order, error) {
	if order.OrderStatus == "" {
		order.OrderStatus = models.DefaultOrderStatus
	}
	if !models.IsValidOrderStatus(order.OrderStatus) {
		return nil, ErrInvalidOrderStatus
	}

	order.OrderNumber = strings.TrimSpace(order.OrderNumber)
	supplied := order.OrderNumber != ""
	if supplied {
		if _, err := s.orderRepo.GetByNumber(order.OrderNumber); err == nil {
			return nil, ErrOrderNumberTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		number, err := s.sequences.NextOrderNumber()
		if err != nil {
			return nil, err
		}
		order.OrderNumber = number
	}

	now := time.Now()
	order.StatusHistory = models.StatusHistory{}
	order.StatusHistory.Touch(order.OrderStatus, now)

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			if supplied {
				return nil, ErrOrderNumberTaken
			}
			return nil, ErrDuplicateOrderNumber
		}
		return nil, err
	}

	log.Info().Str("order_number", order.OrderNumber).Msg("order created")
	return order, nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

func (s *orderService) GetOrderByNumber(orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByNumber(orderNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

func (s *orderService) GetOrdersByPhone(phoneNumber string) ([]models.Order, error) {
	return s.orderRepo.GetByPhone(phoneNumber)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) SearchOrders(query string) ([]models.Order, error) {
	return s.orderRepo.Search(query)
}

// UpdateOrder applies a partial update. A status change appends to the
// status history with first-visit-wins semantics: a status the order
// already passed through keeps its original timestamp.
//
// The load-merge-save below is not serialized per order; two
// concurrent updates to the same order can lose one merge. Accepted at
// current scale.
func (s *orderService) UpdateOrder(id uint, input *UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.OrderStatus != nil {
		if !models.IsValidOrderStatus(*input.OrderStatus) {
			return nil, ErrInvalidOrderStatus
		}
		if order.StatusHistory == nil {
			order.StatusHistory = models.StatusHistory{}
		}
		order.StatusHistory.Backfill(order.OrderStatus, order.CreatedAt)
		order.StatusHistory.Touch(*input.OrderStatus, time.Now())
		order.OrderStatus = *input.OrderStatus
	}

	if input.CustomerID != nil {
		order.CustomerID = input.CustomerID
	}
	if input.CustomerName != nil {
		order.CustomerName = *input.CustomerName
	}
	if input.PhoneNumber != nil {
		order.PhoneNumber = *input.PhoneNumber
	}
	if input.EstimatedDeliveryDate != nil {
		order.EstimatedDeliveryDate = *input.EstimatedDeliveryDate
	}
	if input.AdminNotes != nil {
		order.AdminNotes = *input.AdminNotes
	}
	if input.OrderValue != nil {
		order.OrderValue = input.OrderValue
	}
	if input.ItemsCount != nil {
		order.ItemsCount = input.ItemsCount
	}
	if input.ShippingCost != nil {
		order.ShippingCost = input.ShippingCost
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	err := s.orderRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
