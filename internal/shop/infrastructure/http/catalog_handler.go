package http

import (
	"net/http"

	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service domain.CatalogService
	logger  logging.Logger
}

func NewCatalogHandler(service domain.CatalogService, logger logging.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

//region Categories

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var body createCategoryRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), domain.CreateCategoryParams{
		Name:  body.Name,
		Order: body.Order,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body updateCategoryRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, domain.UpdateCategoryParams{
		Name:  body.Name,
		Order: body.Order,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c)
		return
	}

	page, err := h.service.ListCategories(c.Request.Context(), query.toDomain())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(page, newCategoryResponse))
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *CatalogHandler) ListCategoryProducts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	products, err := h.service.ListAvailableProductsByCategory(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(products, productConverter(languageOf(c))))
}

//endregion

//region Products

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var body createProductRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), domain.CreateProductParams{
		Name:       body.Name.toDomain(),
		Count:      body.Count,
		Price:      body.Price,
		CategoryID: body.CategoryID,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, productConverter(languageOf(c))(product))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body updateProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, body.toDomain())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, productConverter(languageOf(c))(product))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, productConverter(languageOf(c))(product))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c)
		return
	}

	page, err := h.service.ListProducts(c.Request.Context(), query.toDomain())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(page, productConverter(languageOf(c))))
}

func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	var query searchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleBindError(c)
		return
	}

	products, err := h.service.SearchAvailableProducts(c.Request.Context(), query.Keyword)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(products, productConverter(languageOf(c))))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}

//endregion
