package handler

import (
	"context"
	"log/slog"
	"net/http"

	"pagecast/internal/delivery/http/response"
	domainerrors "pagecast/internal/domain/errors"
	"pagecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	GenerationUC usecase.GenerationUsecase
	PublishUC    usecase.PublishUsecase
	Logger       *slog.Logger
}

// PageHandler serves the generation and publish triggers.
type PageHandler struct {
	generationUC usecase.GenerationUsecase
	publishUC    usecase.PublishUsecase
	logger       *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		generationUC: params.GenerationUC,
		publishUC:    params.PublishUC,
		logger:       params.Logger,
	}
}

// Generate handles the generation trigger.
func (h *PageHandler) Generate(c echo.Context) error {
	var req usecase.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid generation request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.generationUC.Generate(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(result.Errors) > 0 {
		return response.MultiStatus(c, result, "Some intents failed to generate")
	}

	return response.Success(c, http.StatusCreated, result, "Pages generated")
}

// Publish handles the publish trigger.
func (h *PageHandler) Publish(c echo.Context) error {
	sel, err := bindSelection(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.publishUC.Publish(c.Request().Context(), sel)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(result.Errors) > 0 {
		return response.MultiStatus(c, result, "Some pages failed to publish")
	}

	return response.Success(c, http.StatusOK, result, "Pages published")
}

// Unpublish takes pages off the live chain, keeping their rows.
func (h *PageHandler) Unpublish(c echo.Context) error {
	return h.runBatch(c, h.publishUC.Unpublish, "Pages unpublished")
}

// Delete removes pages and their stored objects.
func (h *PageHandler) Delete(c echo.Context) error {
	return h.runBatch(c, h.publishUC.Delete, "Pages deleted")
}

// Preview renders a page without publishing it.
func (h *PageHandler) Preview(c echo.Context) error {
	pageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid page ID")
	}

	html, err := h.publishUC.Preview(c.Request().Context(), pageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.HTML(http.StatusOK, html)
}

type batchFunc func(ctx context.Context, sel *usecase.PageSelection) (*usecase.BatchResult, error)

func (h *PageHandler) runBatch(c echo.Context, fn batchFunc, message string) error {
	sel, err := bindSelection(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := fn(c.Request().Context(), sel)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if len(result.Errors) > 0 {
		return response.MultiStatus(c, result, "Some pages failed")
	}

	return response.Success(c, http.StatusOK, result, message)
}

func bindSelection(c echo.Context) (*usecase.PageSelection, error) {
	var sel usecase.PageSelection
	if err := c.Bind(&sel); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid page selection")
	}

	if err := c.Validate(&sel); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if sel.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("pageIds or batchId is required")
	}

	return &sel, nil
}
