package handler

import (
	"net/http"

	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/entity"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createIntegrationRequest struct {
	ServiceType string                   `json:"service_type" validate:"required"`
	SecretID    *int64                   `json:"secret_id"`
	Config      entity.IntegrationConfig `json:"config"`
}

type updateIntegrationRequest struct {
	SecretID *int64                   `json:"secret_id"`
	Config   entity.IntegrationConfig `json:"config"`
	IsActive *bool                    `json:"is_active"`
}

func newIntegrationViews(integrations []*entity.Integration) []*usecase.IntegrationView {
	views := make([]*usecase.IntegrationView, 0, len(integrations))
	for _, integration := range integrations {
		views = append(views, usecase.NewIntegrationView(integration))
	}

	return views
}

// IntegrationHandler holds dependencies for integration management handlers.
type IntegrationHandler struct {
	uc usecase.IntegrationUsecase
}

// NewIntegrationHandler is the constructor for IntegrationHandler, injected by Fx.
func NewIntegrationHandler(uc usecase.IntegrationUsecase) *IntegrationHandler {
	return &IntegrationHandler{uc: uc}
}

// Create connects a service, reusing the user's existing integration of the
// same type when there is one.
func (h *IntegrationHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid integration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	integration, err := h.uc.Create(c.Request().Context(), userID, usecase.CreateIntegrationInput{
		ServiceType: entity.ServiceType(req.ServiceType),
		SecretID:    req.SecretID,
		Config:      req.Config,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewIntegrationView(integration), "Integration created successfully")
}

// List returns the user's integrations, optionally filtered by service_type.
func (h *IntegrationHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var filter *entity.ServiceType
	if serviceType := c.QueryParam("service_type"); serviceType != "" {
		st := entity.ServiceType(serviceType)
		filter = &st
	}

	integrations, err := h.uc.List(c.Request().Context(), userID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newIntegrationViews(integrations), "Integrations retrieved successfully")
}

// Get returns one integration.
func (h *IntegrationHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	integration, err := h.uc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewIntegrationView(integration), "Integration retrieved successfully")
}

// Update applies a partial update to an integration.
func (h *IntegrationHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid integration input")
	}

	integration, err := h.uc.Update(c.Request().Context(), userID, id, usecase.UpdateIntegrationInput{
		SecretID: req.SecretID,
		Config:   req.Config,
		IsActive: req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, usecase.NewIntegrationView(integration), "Integration updated successfully")
}

// Delete removes an integration, keeping the backing secret.
func (h *IntegrationHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Integration deleted"}, "Integration deleted successfully")
}
