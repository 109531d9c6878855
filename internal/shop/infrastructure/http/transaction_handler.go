package http

import (
	"net/http"

	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service domain.PurchaseService
	logger  logging.Logger
}

func NewTransactionHandler(service domain.PurchaseService, logger logging.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		logger:  logger,
	}
}

func (h *TransactionHandler) Buy(c *gin.Context) {
	var body buyRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	purchase, err := h.service.ProcessBuy(c.Request.Context(), body.toDomain())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(purchase))
}

func (h *TransactionHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	purchases, err := h.service.GetBuyHistory(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(purchases, newPurchaseResponse))
}

func (h *TransactionHandler) Items(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	items, err := h.service.GetTransactionItems(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(items, newTransactionItemResponse))
}

func (h *TransactionHandler) ListAll(c *gin.Context) {
	transactions, err := h.service.ListAllTransactions(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(transactions, newTransactionResponse))
}
