package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/refugiartstudio-blip/refugiart-bazar-backend/docs"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/api/handler"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/api/middleware"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// Services bundles the use-case implementations the router wires handlers to.
type Services struct {
	Users     ports.UserService
	Artworks  ports.ArtworkService
	Social    ports.SocialService
	Comments  ports.CommentService
	Purchases ports.PurchaseService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, svcs Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // the original API allowed all origins
	e.Use(echoprometheus.NewMiddleware("refugiart"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	identity := middleware.Identity()

	healthHandler := handler.NewHealthHandler(db)
	userHandler := handler.NewUserHandler(svcs.Users)
	artworkHandler := handler.NewArtworkHandler(svcs.Artworks)
	socialHandler := handler.NewSocialHandler(svcs.Social)
	commentHandler := handler.NewCommentHandler(svcs.Comments)
	purchaseHandler := handler.NewPurchaseHandler(svcs.Purchases)

	// --- Health & operational endpoints ---
	e.GET("/", healthHandler.Root)
	e.GET("/ping-db", healthHandler.PingDB)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- API routes ---
	g := e.Group("/api")

	g.POST("/users", userHandler.Create)
	g.GET("/users/artists", userHandler.ListArtists)
	g.GET("/users/:id", userHandler.Get)
	g.PATCH("/users/:id", userHandler.Update)
	g.POST("/users/:id/follow", socialHandler.ToggleFollow, identity)
	g.GET("/users/:id/purchases", purchaseHandler.ListByUser)

	g.GET("/artworks", artworkHandler.List)
	g.GET("/artworks/:id", artworkHandler.Get)
	g.POST("/artworks", artworkHandler.Create, identity)
	g.POST("/artworks/:id/like", socialHandler.ToggleLike, identity)
	g.GET("/artworks/:id/comments", commentHandler.List)
	g.POST("/artworks/:id/comments", commentHandler.Create, identity)
	g.POST("/artworks/:id/purchase", purchaseHandler.Purchase, identity)

	g.GET("/artists/:id/artworks", artworkHandler.ListByArtist)

	return e
}
