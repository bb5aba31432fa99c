package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/api/metrics"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/domain"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// PurchaseHandler handles the purchase workflow and the buyer's ledger view.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Purchase handles POST /api/artworks/:id/purchase.
//
// @Summary      Purchase an artwork
// @Tags         purchases
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller identity (buyer)"
// @Param        id         path      string  true  "Artwork id"
// @Success      201        {object}  domain.Purchase
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/artworks/{id}/purchase [post]
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	buyerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	purchase, err := h.service.Purchase(c.Request().Context(), buyerID, c.Param("id"))
	if err != nil {
		metrics.PurchasesRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return err
	}

	metrics.PurchasesCompletedTotal.Inc()
	return c.JSON(http.StatusCreated, purchase)
}

// ListByUser handles GET /api/users/:id/purchases.
//
// @Summary      List a user's purchases
// @Tags         purchases
// @Produce      json
// @Param        id   path     string  true  "Buyer id"
// @Success      200  {array}  domain.Purchase
// @Router       /api/users/{id}/purchases [get]
func (h *PurchaseHandler) ListByUser(c echo.Context) error {
	purchases, err := h.service.ListByBuyer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrArtworkNotFound), errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrArtworkUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrSelfPurchase):
		return "self_purchase"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
