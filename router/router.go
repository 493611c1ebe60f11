package router

import (
	"log"

	"travel-organizer/config"
	"travel-organizer/controllers"
	"travel-organizer/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares.
// Rotas públicas (registro/login/refresh) + rotas autenticadas (token).
// Os paths espelham a API que o app mobile consome.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	// Public (no auth)
	r.POST("/auth/register", Logger(), controllers.Register)
	r.POST("/auth/login", Logger(), controllers.Login)
	r.POST("/auth/refresh", Logger(), controllers.Refresh)

	// Authenticated routes (token required)
	auth := r.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/auth/me", Logger(), controllers.Me)

	// Viagens CRUD
	auth.GET("/viagens", Logger(), controllers.GetViagens)
	auth.GET("/viagens/:id", Logger(), controllers.GetViagemByID)
	auth.POST("/viagens", Logger(), controllers.CreateViagem)
	auth.PUT("/viagens/:id", Logger(), controllers.UpdateViagem)
	auth.DELETE("/viagens/:id", Logger(), controllers.DeleteViagem)

	// Pontos turísticos
	auth.GET("/viagens/:id/pontos-turisticos", Logger(), controllers.GetPontosTuristicosByViagem)
	auth.POST("/pontos-turisticos", Logger(), controllers.CreatePontoTuristico)
	auth.DELETE("/pontos-turisticos/:id", Logger(), controllers.DeletePontoTuristico)

	log.Printf("Routes initialized")
}
