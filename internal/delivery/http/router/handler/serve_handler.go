package handler

import (
	"net/http"
	"strings"

	"pagecast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderPageSource names the resolution step that produced a response.
const HeaderPageSource = "X-Page-Source"

// ServeHandlerParams holds dependencies for ServeHandler, injected by Fx.
type ServeHandlerParams struct {
	fx.In

	ResolutionUC usecase.ResolutionUsecase
}

// ServeHandler answers content requests through the resolution chain.
type ServeHandler struct {
	resolutionUC usecase.ResolutionUsecase
}

// NewServeHandler is the constructor for ServeHandler
func NewServeHandler(params ServeHandlerParams) *ServeHandler {
	return &ServeHandler{resolutionUC: params.ResolutionUC}
}

// Serve writes the resolved document: 200 when a chain step matched, 404
// with the fallback page otherwise.
func (h *ServeHandler) Serve(c echo.Context) error {
	res := h.resolutionUC.Resolve(c.Request().Context(), c.Request().URL.Path)

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, res.CacheControl)
	header.Set(HeaderPageSource, string(res.Source))
	if res.ETag != "" {
		header.Set("ETag", res.ETag)
	}

	if res.Found && res.ETag != "" && etagMatches(c.Request().Header.Get("If-None-Match"), res.ETag) {
		return c.NoContent(http.StatusNotModified)
	}

	status := http.StatusOK
	if !res.Found {
		status = http.StatusNotFound
	}

	return c.Blob(status, res.ContentType, res.Body)
}

func etagMatches(ifNoneMatch, etag string) bool {
	for candidate := range strings.SplitSeq(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}

	return false
}
