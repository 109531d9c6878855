package http

import (
	"net/http"

	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service domain.LedgerService
	logger  logging.Logger
}

func NewPaymentHandler(service domain.LedgerService, logger logging.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *PaymentHandler) AddBalance(c *gin.Context) {
	var body addBalanceRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	result, err := h.service.AddBalance(c.Request.Context(), body.UserID, body.Amount)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newTopUpResponse(result))
}

func (h *PaymentHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payments, err := h.service.GetPaymentHistory(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(payments, newPaymentResponse))
}

func (h *PaymentHandler) ListAll(c *gin.Context) {
	payments, err := h.service.ListAllPayments(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(payments, newPaymentResponse))
}
