package http

import (
	"net/http"

	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service domain.UserService
	logger  logging.Logger
}

func NewUserHandler(service domain.UserService, logger logging.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var body createUserRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		handleBindError(c)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), domain.CreateUserParams{
		Fullname: body.Fullname,
		Username: body.Username,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, convertAll(users, newUserResponse))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusOK)
}
