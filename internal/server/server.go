// Package server assembles the development API stub: the gin router, the
// repositories and the feature modules behind the six-cities HTTP contract.
// It backs local development and the end-to-end tests of the state engine.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sixcities/internal/middleware"
	"sixcities/internal/modules/auth"
	"sixcities/internal/modules/comments"
	"sixcities/internal/modules/favorites"
	"sixcities/internal/modules/offers"
	jwtsvc "sixcities/internal/pkg/jwt"
	"sixcities/internal/repository"
)

// BasePath is the URL prefix the API is served under; client base URLs
// include it.
const BasePath = "/six-cities"

func New(db *gorm.DB, jwt *jwtsvc.Service) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwt))
	offersHandler := offers.NewHandler(offers.NewService(offerRepo, favoriteRepo))
	commentsHandler := comments.NewHandler(comments.NewService(commentRepo, offerRepo))
	favoritesHandler := favorites.NewHandler(favorites.NewService(favoriteRepo, offerRepo))

	requireAuth := middleware.RequireAuth(jwt, userRepo)
	optionalAuth := middleware.OptionalAuth(jwt, userRepo)

	r := gin.New()
	r.Use(middleware.RequestLogger(slog.Default()))
	r.Use(middleware.CORS())

	api := r.Group(BasePath)
	{
		api.POST("/login", authHandler.Login)
		api.GET("/login", requireAuth, authHandler.VerifySession)
		api.DELETE("/logout", requireAuth, authHandler.Logout)

		api.GET("/offers", optionalAuth, offersHandler.List)
		api.GET("/offers/:id", optionalAuth, offersHandler.Get)
		api.GET("/offers/:id/nearby", optionalAuth, offersHandler.Nearby)

		api.GET("/comments/:id", commentsHandler.List)
		api.POST("/comments/:id", requireAuth, commentsHandler.Create)

		api.GET("/favorite", requireAuth, favoritesHandler.List)
		api.POST("/favorite/:offerId/:status", requireAuth, favoritesHandler.Set)
	}

	return r
}
