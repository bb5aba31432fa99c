package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/api/metrics"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// ArtworkHandler handles HTTP requests for artwork listings.
type ArtworkHandler struct {
	service ports.ArtworkService
}

func NewArtworkHandler(service ports.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{service: service}
}

// List handles GET /api/artworks with category/limit/offset filters.
//
// @Summary      List artworks, newest first
// @Tags         artworks
// @Produce      json
// @Param        category  query     string  false  "Category filter ('all' disables it)"
// @Param        limit     query     int     false  "Page size (default 20)"
// @Param        offset    query     int     false  "Rows to skip"
// @Success      200       {array}   ports.ArtworkWithArtist
// @Router       /api/artworks [get]
func (h *ArtworkHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	artworks, err := h.service.ListArtworks(c.Request().Context(), ports.ListArtworksFilter{
		Category: c.QueryParam("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworks)
}

// Get handles GET /api/artworks/:id. Fetching the detail records a view as a
// side effect of the read.
//
// @Summary      Get an artwork with its artist
// @Tags         artworks
// @Produce      json
// @Param        id   path      string  true  "Artwork id"
// @Success      200  {object}  ports.ArtworkWithArtist
// @Failure      404  {object}  errorResponse
// @Router       /api/artworks/{id} [get]
func (h *ArtworkHandler) Get(c echo.Context) error {
	artwork, err := h.service.GetArtwork(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.ArtworkViewsTotal.Inc()
	return c.JSON(http.StatusOK, artwork)
}

// Create handles POST /api/artworks. The caller identity becomes the artist.
//
// @Summary      Create an artwork listing
// @Tags         artworks
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                true  "Caller identity"
// @Param        body       body      createArtworkRequest  true  "Listing fields"
// @Success      201        {object}  domain.Artwork
// @Failure      400        {object}  errorResponse
// @Router       /api/artworks [post]
func (h *ArtworkHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createArtworkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	artwork, err := h.service.CreateArtwork(c.Request().Context(), ports.CreateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Category:    req.Category,
		ArtistID:    userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, artwork)
}

// ListByArtist handles GET /api/artists/:id/artworks.
//
// @Summary      List an artist's artworks
// @Tags         artworks
// @Produce      json
// @Param        id   path     string  true  "Artist id"
// @Success      200  {array}  domain.Artwork
// @Router       /api/artists/{id}/artworks [get]
func (h *ArtworkHandler) ListByArtist(c echo.Context) error {
	artworks, err := h.service.ListByArtist(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artworks)
}
