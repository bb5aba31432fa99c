package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrArtworkNotFound, http.StatusNotFound},
		{domain.ErrSelfFollow, http.StatusBadRequest},
		{domain.ErrSelfPurchase, http.StatusBadRequest},
		{domain.ErrArtworkUnavailable, http.StatusBadRequest},
		{domain.ErrInsufficientBalance, http.StatusBadRequest},
		{domain.ErrConflict, http.StatusConflict},
	}

	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["error"] != tc.err.Error() {
			t.Errorf("%v: expected message %q, got %q", tc.err, tc.err.Error(), body["error"])
		}
	}
}

func TestErrorHandler_WrappedDomainErrorStillMaps(t *testing.T) {
	wrapped := errors.Join(errors.New("purchase:"), domain.ErrInsufficientBalance)

	rec, _ := render(t, wrapped)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("wrapped domain error must keep its mapping, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "missing X-User-ID header"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "missing X-User-ID header" {
		t.Errorf("unexpected message: %q", body["error"])
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	rec, body := render(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	// The real cause must not leak to the client.
	if body["error"] != "internal server error" {
		t.Errorf("unexpected message: %q", body["error"])
	}
}
