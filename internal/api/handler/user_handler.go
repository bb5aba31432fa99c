package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Profile fields"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		IsArtist:        req.IsArtist,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListArtists handles GET /api/users/artists.
//
// @Summary      List all artist accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/users/artists [get]
func (h *UserHandler) ListArtists(c echo.Context) error {
	artists, err := h.service.ListArtists(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

// Update handles PATCH /api/users/:id. Only fields present in the payload
// are changed.
//
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), ports.UserPatch{
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		IsArtist:        req.IsArtist,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
