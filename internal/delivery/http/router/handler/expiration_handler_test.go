package handler

import (
	"net/http"
	"testing"

	domainerrors "pagecast/internal/domain/errors"
	mockUC "pagecast/internal/mocks/usecase"
	"pagecast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newExpirationRig(t *testing.T) (*echo.Echo, *mockUC.MockExpirationUsecase) {
	t.Helper()

	e := newTestEcho()
	expirationUC := mockUC.NewMockExpirationUsecase(t)
	h := NewExpirationHandler(ExpirationHandlerParams{ExpirationUC: expirationUC, Logger: discardLogger()})
	e.POST("/api/pages/expire", h.Expire)

	return e, expirationUC
}

func TestExpirationHandler_ExpireAll(t *testing.T) {
	e, expirationUC := newExpirationRig(t)
	count := 3

	expirationUC.EXPECT().
		Handle(mock.Anything, &usecase.ExpirationRequest{Action: usecase.ActionExpireAll}).
		Return(&usecase.ExpirationResult{Success: true, Message: "expired 3 page(s)", ExpiredCount: &count}, nil)

	rec := do(e, http.MethodPost, "/api/pages/expire", `{"action":"expire-all"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "expired 3 page(s)", resp.Message)
	assert.Contains(t, rec.Body.String(), `"expiredCount":3`)
}

func TestExpirationHandler_Extend(t *testing.T) {
	e, expirationUC := newExpirationRig(t)
	pageID := uuid.New()

	expirationUC.EXPECT().
		Handle(mock.Anything, mock.MatchedBy(func(req *usecase.ExpirationRequest) bool {
			return req.Action == usecase.ActionExtend && *req.PageID == pageID && req.Hours == 12
		})).
		Return(&usecase.ExpirationResult{Success: true, Message: "extended"}, nil)

	rec := do(e, http.MethodPost, "/api/pages/expire", `{"action":"extend","pageId":"`+pageID.String()+`","hours":12}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpirationHandler_Invalid(t *testing.T) {
	e, _ := newExpirationRig(t)

	for name, body := range map[string]string{
		"unknown action":  `{"action":"purge"}`,
		"missing page id": `{"action":"expire-single"}`,
		"missing action":  `{}`,
		"malformed body":  `[`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/pages/expire", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestExpirationHandler_PageNotFound(t *testing.T) {
	e, expirationUC := newExpirationRig(t)
	expirationUC.EXPECT().Handle(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPageNotFound)

	rec := do(e, http.MethodPost, "/api/pages/expire", `{"action":"expire-single","pageId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PAGE_NOT_FOUND", decode(t, rec).Error.Code)
}
