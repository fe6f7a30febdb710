package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-management-api/internal/usecase/user"
	pkgerrors "user-management-api/pkg/errors"
	"user-management-api/pkg/logger"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// UserRequest represents the HTTP request body for creating or updating a user.
// Any client-supplied id is ignored.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Location", "/users/"+resp.ID.String())
	c.JSON(http.StatusCreated, toResponse(resp))
}

// ListUsers handles GET /users?page=&pageSize=
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := queryInt(c, "page")
	if err != nil {
		h.handleError(c, err)
		return
	}
	pageSize, err := queryInt(c, "pageSize")
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.uc.ListUsers(c.Request.Context(), user.ListUsersRequest{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	users := make([]UserResponse, len(resp.Users))
	for i := range resp.Users {
		users[i] = toResponse(&resp.Users[i])
	}

	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(resp))
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// an unknown id still answers 404 ahead of a broken body
		if _, lookupErr := h.uc.GetUser(c.Request.Context(), user.GetUserRequest{ID: id}); lookupErr != nil {
			h.handleError(c, lookupErr)
			return
		}
		_ = c.Error(err)
		return
	}

	resp, err := h.uc.UpdateUser(c.Request.Context(), user.UpdateUserRequest{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponse(resp))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), user.DeleteUserRequest{ID: id}); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Debug("Invalid user ID", zap.String("id", raw), zap.Error(err))
		h.handleError(c, pkgerrors.NewMalformedIDError())
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter. Absent or empty
// values yield nil so the usecase applies its default.
func queryInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.NewMalformedIntegerError(name)
	}
	return &v, nil
}

// handleError converts usecase errors to HTTP responses. Anything that is not
// a validation or not-found failure is left to the recovery stage.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErr *pkgerrors.ValidationError
	var notFoundErr *pkgerrors.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, pkgerrors.ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.Status(http.StatusNotFound)
	default:
		logger.WithContext(c.Request.Context(), h.log).Error("User operation failed", zap.Error(err))
		_ = c.Error(err)
	}
}

func toResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
