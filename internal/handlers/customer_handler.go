package handlers

import (
	"errors"
	"net/http"

	"order_tracker/internal/middleware"
	"order_tracker/internal/models"
	"order_tracker/internal/services"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
	authService     services.AuthService
}

func NewCustomerHandler(customerService services.CustomerService, authService services.AuthService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, authService: authService}
}

// Login accepts one identifier field; the auth service probes the
// account-number space first, then phone numbers. Clients that still
// send the older accountNumber/phoneNumber fields keep working.
func (h *CustomerHandler) Login(c *gin.Context) {
	var req struct {
		Identifier    string `json:"identifier"`
		AccountNumber string `json:"accountNumber"`
		PhoneNumber   string `json:"phoneNumber"`
		Password      string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.AccountNumber
	}
	if identifier == "" {
		identifier = req.PhoneNumber
	}
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidInput})
		return
	}

	token, customer, err := h.authService.CustomerLogin(identifier, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "رقم الحساب أو رقم الهاتف أو كلمة المرور غير صحيحة"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "customer": customer.Profile()})
}

func (h *CustomerHandler) Profile(c *gin.Context) {
	claims := middleware.CustomerClaims(c)
	customer, err := h.customerService.GetCustomer(claims.PrincipalID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على العميل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer.Profile())
}

func (h *CustomerHandler) MyOrders(c *gin.Context) {
	claims := middleware.CustomerClaims(c)
	orders, err := h.customerService.GetCustomerOrders(claims.PrincipalID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على العميل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CustomerHandler) ChangePassword(c *gin.Context) {
	claims := middleware.CustomerClaims(c)

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "كلمة المرور الحالية والجديدة مطلوبة"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "كلمة المرور الجديدة يجب أن تكون 6 أحرف على الأقل"})
		return
	}

	err := h.customerService.ChangePassword(claims.PrincipalID, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على العميل"})
		return
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": "كلمة المرور الحالية غير صحيحة"})
		return
	case err != nil:
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم تحديث كلمة المرور بنجاح"})
}

// Admin-facing customer management.

func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		AccountNumber string `json:"accountNumber"`
		Name          string `json:"name" binding:"required"`
		PhoneNumber   string `json:"phoneNumber" binding:"required"`
		Password      string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	customer := &models.Customer{
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
	}

	created, err := h.customerService.CreateCustomer(customer, req.Password)
	if errors.Is(err, services.ErrDuplicateAccountNumber) {
		c.JSON(http.StatusConflict, gin.H{"message": "رقم الحساب مستخدم من قبل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created.Profile())
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		serverError(c, err)
		return
	}

	profiles := make([]models.CustomerProfile, 0, len(customers))
	for i := range customers {
		profiles = append(profiles, customers[i].Profile())
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *CustomerHandler) Orders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	orders, err := h.customerService.GetCustomerOrders(id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على العميل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(id, &input)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على العميل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer.Profile())
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.customerService.DeleteCustomer(id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "لم يتم العثور على العميل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم حذف العميل بنجاح"})
}
