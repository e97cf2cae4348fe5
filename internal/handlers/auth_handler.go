package handlers

import (
	"errors"
	"net/http"

	"order_tracker/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "اسم المستخدم أو كلمة المرور غير صحيحة"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username},
	})
}

// Setup creates the initial admin account. Safe to expose: it refuses
// to run once an admin exists.
func (h *AuthHandler) Setup(c *gin.Context) {
	user, err := h.authService.Setup()
	if errors.Is(err, services.ErrAdminExists) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "المدير موجود بالفعل"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "تم إنشاء المدير بنجاح", "username": user.Username})
}
