package http

import (
	"net/http"
	"strconv"

	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/Lexv0lk/shop/internal/shop/i18n"
	"github.com/gin-gonic/gin"
)

const idParam = "id"

// handleError writes the localized error body. Domain failures are the
// client's to fix; everything else is logged and hidden behind code 100.
func handleError(c *gin.Context, logger logging.Logger, err error) {
	tag := languageOf(c)

	domainErr, ok := domain.AsError(err)
	if !ok {
		logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    int(domain.CodeInternal),
			Message: i18n.ErrorMessage(tag, domain.CodeInternal),
		})
		return
	}

	switch domainErr.Kind {
	case domain.KindNotFound, domain.KindConflict, domain.KindValidation, domain.KindBusinessRule:
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    int(domainErr.Code),
			Message: i18n.ErrorMessage(tag, domainErr.Code, domainErr.Args...),
		})
	default:
		logger.Error("unclassified domain error", "code", domainErr.Code.Key(), "error", domainErr.Error())
		c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    int(domain.CodeInternal),
			Message: i18n.ErrorMessage(tag, domain.CodeInternal),
		})
	}
}

func handleBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
}

// parseID reads the :id path parameter, answering 400 itself when it is not
// a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(idParam), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid id"})
		return 0, false
	}

	return id, true
}
