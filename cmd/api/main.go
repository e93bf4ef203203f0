package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow/internal/config"
	"github.com/BruksfildServices01/barberflow/internal/routes"
	"github.com/BruksfildServices01/barberflow/internal/state"
	"github.com/BruksfildServices01/barberflow/internal/store"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	app := state.New(st)
	if err := app.Load(ctx); err != nil {
		log.Fatalf("failed to load application state: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, app, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
