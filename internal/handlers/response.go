package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidInput = "بيانات غير صالحة"
	msgServerError  = "حدث خطأ في الخادم"
)

// badRequest reports a binding failure, attaching per-field errors when
// the failure came from struct validation.
func badRequest(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = "حقل مطلوب"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidInput, "errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidInput})
}

// serverError logs the cause and returns the generic message; internal
// detail never reaches the client.
func serverError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgServerError})
}
