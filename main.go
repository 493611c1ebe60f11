package main

import (
	"log"

	"travel-organizer/config"
	"travel-organizer/controllers"
	dbpkg "travel-organizer/db"
	"travel-organizer/router"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Get("")

	dbpkg.SetConfigurations(cfg)
	controllers.SetSecurityConfigurations(cfg.Security)

	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatalf("erro ao conectar no banco: %v", err)
	}
	defer database.Close()

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Travel Organizer API listening on :%s", cfg.ApiPort)
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		log.Fatal(err)
	}
}
