package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
)

type stubPurchaseService struct {
	purchaseFn    func(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error)
	listByBuyerFn func(ctx context.Context, buyerID string) ([]*domain.Purchase, error)
}

func (s *stubPurchaseService) Purchase(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error) {
	return s.purchaseFn(ctx, buyerID, artworkID)
}

func (s *stubPurchaseService) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Purchase, error) {
	return s.listByBuyerFn(ctx, buyerID)
}

func TestPurchaseHandler_Purchase_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error) {
			if buyerID != "buyer-1" || artworkID != "art-1" {
				t.Fatalf("unexpected args: %s %s", buyerID, artworkID)
			}
			return &domain.Purchase{
				ID:        "purchase-1",
				BuyerID:   buyerID,
				ArtworkID: artworkID,
				Price:     350,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewPurchaseHandler(stub)

	c, rec := newToggleContext(e, "/api/artworks/art-1/purchase", "buyer-1", "art-1")
	if err := handler.Purchase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "purchase-1" || resp["price"] != 350.0 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPurchaseHandler_Purchase_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewPurchaseHandler(stub)

	c, _ := newToggleContext(e, "/api/artworks/art-1/purchase", "", "art-1")
	err := handler.Purchase(c)
	if code := httpCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestPurchaseHandler_Purchase_DomainErrorsPassThrough(t *testing.T) {
	cases := []error{
		domain.ErrArtworkNotFound,
		domain.ErrArtworkUnavailable,
		domain.ErrSelfPurchase,
		domain.ErrInsufficientBalance,
		domain.ErrConflict,
	}

	for _, want := range cases {
		e := newTestEcho()
		stub := &stubPurchaseService{
			purchaseFn: func(ctx context.Context, buyerID, artworkID string) (*domain.Purchase, error) {
				return nil, want
			},
		}
		handler := NewPurchaseHandler(stub)

		c, _ := newToggleContext(e, "/api/artworks/art-1/purchase", "buyer-1", "art-1")
		err := handler.Purchase(c)
		if !errors.Is(err, want) {
			t.Errorf("expected %v passthrough, got %v", want, err)
		}
	}
}

func TestPurchaseHandler_ListByUser(t *testing.T) {
	e := newTestEcho()
	stub := &stubPurchaseService{
		listByBuyerFn: func(ctx context.Context, buyerID string) ([]*domain.Purchase, error) {
			if buyerID != "buyer-1" {
				t.Fatalf("unexpected buyer: %s", buyerID)
			}
			return []*domain.Purchase{{ID: "purchase-1", BuyerID: buyerID}}, nil
		},
	}
	handler := NewPurchaseHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users/buyer-1/purchases", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("buyer-1")

	if err := handler.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "purchase-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
