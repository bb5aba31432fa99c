package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/infrastructure/db/mongo"
)

// HealthHandler serves the liveness message and the store connectivity check.
type HealthHandler struct {
	db *mongo.Database
}

func NewHealthHandler(db *mongo.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET /. Confirms the process is alive.
//
// @Summary      Liveness message
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Refugiart Bazar API is up",
	})
}

// PingDB handles GET /ping-db, the store connectivity check.
//
// @Summary      MongoDB connectivity check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  errorResponse
// @Router       /ping-db [get]
func (h *HealthHandler) PingDB(c echo.Context) error {
	if err := mongodb.Ping(c.Request().Context(), h.db); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "connected to MongoDB",
	})
}
