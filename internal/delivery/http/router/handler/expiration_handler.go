package handler

import (
	"log/slog"
	"net/http"

	"pagecast/internal/delivery/http/response"
	"pagecast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExpirationHandlerParams holds dependencies for ExpirationHandler, injected by Fx.
type ExpirationHandlerParams struct {
	fx.In

	ExpirationUC usecase.ExpirationUsecase
	Logger       *slog.Logger
}

// ExpirationHandler serves the expiration trigger.
type ExpirationHandler struct {
	expirationUC usecase.ExpirationUsecase
	logger       *slog.Logger
}

// NewExpirationHandler is the constructor for ExpirationHandler
func NewExpirationHandler(params ExpirationHandlerParams) *ExpirationHandler {
	return &ExpirationHandler{
		expirationUC: params.ExpirationUC,
		logger:       params.Logger,
	}
}

// Expire dispatches one expiration action.
func (h *ExpirationHandler) Expire(c echo.Context) error {
	var req usecase.ExpirationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid expiration request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.expirationUC.Handle(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}
