package main

import (
	"log"

	"trivia-backend/internal/config"
	"trivia-backend/internal/database"
	"trivia-backend/internal/router"
	"trivia-backend/internal/ws"

	_ "trivia-backend/docs"

	"github.com/joho/godotenv"
)

// @title           Trivia Game API
// @version         1.0
// @description     API for live trivia sessions: catalog authoring, games, joins, scores and push events
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	r := router.New(db, hub)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
