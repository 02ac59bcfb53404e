package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"pagecast/internal/delivery/http/middleware"
	"pagecast/internal/delivery/http/response"
	"pagecast/internal/delivery/http/validator"
	mockUC "pagecast/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

type pageRig struct {
	e          *echo.Echo
	generation *mockUC.MockGenerationUsecase
	publish    *mockUC.MockPublishUsecase
}

func newPageRig(t *testing.T) pageRig {
	t.Helper()

	rig := pageRig{
		e:          newTestEcho(),
		generation: mockUC.NewMockGenerationUsecase(t),
		publish:    mockUC.NewMockPublishUsecase(t),
	}

	h := NewPageHandler(PageHandlerParams{
		GenerationUC: rig.generation,
		PublishUC:    rig.publish,
		Logger:       discardLogger(),
	})
	rig.e.POST("/api/pages/generate", h.Generate)
	rig.e.POST("/api/pages/publish", h.Publish)
	rig.e.POST("/api/pages/unpublish", h.Unpublish)
	rig.e.DELETE("/api/pages", h.Delete)
	rig.e.GET("/api/pages/:id/preview", h.Preview)

	return rig
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}
