package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"order_tracker/internal/models"
	"order_tracker/internal/services"

	"github.com/gin-gonic/gin"
)

// Broadcaster is the realtime fan-out the order handler notifies after
// successful writes. Broadcast failures never fail the HTTP response.
type Broadcaster interface {
	BroadcastOrderCreate(order *models.Order)
	BroadcastOrderUpdate(order *models.Order)
	BroadcastOrderDelete(orderID uint)
}

type OrderHandler struct {
	orderService services.OrderService
	broadcaster  Broadcaster
}

func NewOrderHandler(orderService services.OrderService, broadcaster Broadcaster) *OrderHandler {
	return &OrderHandler{orderService: orderService, broadcaster: broadcaster}
}

// Track is the public lookup. One query parameter is enough: an order
// number returns a single order, a phone number returns every order
// placed under it.
func (h *OrderHandler) Track(c *gin.Context) {
	orderNumber := c.Query("orderNumber")
	phoneNumber := c.Query("phoneNumber")

	if orderNumber != "" {
		order, err := h.orderService.GetOrderByNumber(orderNumber)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على الطلبية"})
			return
		}
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
		return
	}

	if phoneNumber != "" {
		orders, err := h.orderService.GetOrdersByPhone(phoneNumber)
		if err != nil {
			serverError(c, err)
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على طلبيات بهذا الرقم"})
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": "يرجى إدخال رقم الطلبية أو رقم الهاتف"})
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على الطلبية"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Search(c *gin.Context) {
	orders, err := h.orderService.SearchOrders(c.Param("query"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		OrderNumber           string   `json:"orderNumber"`
		CustomerID            *uint    `json:"customerId"`
		CustomerName          string   `json:"customerName" binding:"required"`
		PhoneNumber           string   `json:"phoneNumber" binding:"required"`
		OrderStatus           string   `json:"orderStatus"`
		EstimatedDeliveryDate string   `json:"estimatedDeliveryDate"`
		AdminNotes            string   `json:"adminNotes"`
		OrderValue            *float64 `json:"orderValue"`
		ItemsCount            *int     `json:"itemsCount"`
		ShippingCost          *float64 `json:"shippingCost"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	order := &models.Order{
		OrderNumber:           req.OrderNumber,
		CustomerID:            req.CustomerID,
		CustomerName:          req.CustomerName,
		PhoneNumber:           req.PhoneNumber,
		OrderStatus:           req.OrderStatus,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
		AdminNotes:            req.AdminNotes,
		OrderValue:            req.OrderValue,
		ItemsCount:            req.ItemsCount,
		ShippingCost:          req.ShippingCost,
	}

	created, err := h.orderService.CreateOrder(order)
	switch {
	case errors.Is(err, services.ErrOrderNumberTaken):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": msgInvalidInput,
			"errors":  gin.H{"orderNumber": "رقم الطلبية مستخدم من قبل"},
		})
		return
	case errors.Is(err, services.ErrDuplicateOrderNumber):
		c.JSON(http.StatusConflict, gin.H{"message": "رقم الطلبية مستخدم من قبل"})
		return
	case errors.Is(err, services.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": msgInvalidInput,
			"errors":  gin.H{"orderStatus": "حالة الطلبية غير معروفة"},
		})
		return
	case err != nil:
		serverError(c, err)
		return
	}

	h.broadcaster.BroadcastOrderCreate(created)
	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.orderService.UpdateOrder(id, &input)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على الطلبية"})
		return
	case errors.Is(err, services.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": msgInvalidInput,
			"errors":  gin.H{"orderStatus": "حالة الطلبية غير معروفة"},
		})
		return
	case err != nil:
		serverError(c, err)
		return
	}

	h.broadcaster.BroadcastOrderUpdate(order)
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.orderService.DeleteOrder(id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على الطلبية"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	h.broadcaster.BroadcastOrderDelete(id)
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف الطلبية بنجاح"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidInput})
		return 0, false
	}
	return uint(id), true
}
