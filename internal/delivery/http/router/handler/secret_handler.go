package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/entity"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createSecretRequest struct {
	Name         string         `json:"name" validate:"required"`
	ServiceType  string         `json:"service_type" validate:"required"`
	DatosSecrets map[string]any `json:"datos_secrets" validate:"required"`
}

type updateSecretRequest struct {
	Name         *string        `json:"name"`
	ServiceType  *string        `json:"service_type"`
	DatosSecrets map[string]any `json:"datos_secrets"`
}

type secretResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"service_type"`
	Value       string `json:"value"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func newSecretResponse(secret *entity.Secret) secretResponse {
	return secretResponse{
		ID:          secret.ID,
		Name:        secret.Name,
		ServiceType: string(secret.ServiceType),
		Value:       secret.EncryptedValue,
		CreatedAt:   secret.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   secret.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func newSecretResponses(secrets []*entity.Secret) []secretResponse {
	out := make([]secretResponse, 0, len(secrets))
	for _, secret := range secrets {
		out = append(out, newSecretResponse(secret))
	}

	return out
}

// SecretHandler holds dependencies for secret management handlers.
type SecretHandler struct {
	uc usecase.SecretUsecase
}

// NewSecretHandler is the constructor for SecretHandler, injected by Fx.
func NewSecretHandler(uc usecase.SecretUsecase) *SecretHandler {
	return &SecretHandler{uc: uc}
}

// Create stores a new secret.
func (h *SecretHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createSecretRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid secret input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	payload, err := json.Marshal(req.DatosSecrets)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid secret input")
	}

	secret, err := h.uc.Create(c.Request().Context(), userID, usecase.CreateSecretInput{
		Name:        req.Name,
		ServiceType: entity.ServiceType(req.ServiceType),
		Value:       string(payload),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSecretResponse(secret), "Secret created successfully")
}

// List returns the user's secrets with payloads redacted. An optional
// service_type query parameter narrows the listing.
func (h *SecretHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var (
		secrets []*entity.Secret
		err     error
	)
	if serviceType := c.QueryParam("service_type"); serviceType != "" {
		secrets, err = h.uc.ListByType(c.Request().Context(), userID, entity.ServiceType(serviceType))
	} else {
		secrets, err = h.uc.List(c.Request().Context(), userID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSecretResponses(secrets), "Secrets retrieved successfully")
}

// Get returns one secret with its payload decrypted.
func (h *SecretHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	secret, err := h.uc.Get(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSecretResponse(secret), "Secret retrieved successfully")
}

// Update applies a partial update to a secret.
func (h *SecretHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateSecretRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid secret input")
	}

	input := usecase.UpdateSecretInput{Name: req.Name}
	if req.ServiceType != nil {
		serviceType := entity.ServiceType(*req.ServiceType)
		input.ServiceType = &serviceType
	}
	if req.DatosSecrets != nil {
		payload, err := json.Marshal(req.DatosSecrets)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid secret input")
		}
		value := string(payload)
		input.Value = &value
	}

	secret, err := h.uc.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSecretResponse(secret), "Secret updated successfully")
}

// Delete removes a secret.
func (h *SecretHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, map[string]string{"message": "Secret deleted"}, "Secret deleted successfully")
}

// pathID parses an int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" parameter")
	}

	return id, nil
}
