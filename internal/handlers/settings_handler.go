package handlers

import (
	"net/http"

	"order_tracker/internal/models"
	"order_tracker/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetWithDefaults()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	settings, err := h.settingsService.Update(&req)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Public exposes only company display info; numbering configuration
// stays admin-only.
func (h *SettingsHandler) Public(c *gin.Context) {
	settings, err := h.settingsService.GetWithDefaults()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companyName":    settings.CompanyName,
		"companyLogo":    settings.CompanyLogo,
		"companyAddress": settings.CompanyAddress,
		"companyPhone":   settings.CompanyPhone,
		"companyEmail":   settings.CompanyEmail,
		"companyWebsite": settings.CompanyWebsite,
	})
}
