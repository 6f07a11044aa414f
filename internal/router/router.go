package router

import (
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/services"
	"trivia-backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New wires every handler onto a gin engine. Tests call this with their own
// database handle and hub.
func New(db *gorm.DB, hub *ws.Hub) *gin.Engine {
	catalogService := services.NewCatalogService(db)
	gameService := services.NewGameService(db)
	sessionService := services.NewSessionService(db, hub)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	gameHandler := handlers.NewGameHandler(gameService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/games/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", catalogHandler.ListCategories)
			categories.POST("", catalogHandler.CreateCategory)
			categories.GET("/:category/questions", catalogHandler.ListQuestions)
			categories.POST("/:category/questions", catalogHandler.CreateQuestion)
			categories.GET("/:category/questions/:question/answers", catalogHandler.ListAnswers)
			categories.POST("/:category/questions/:question/answers", catalogHandler.CreateAnswers)
		}

		games := api.Group("/games")
		{
			games.GET("", gameHandler.ListGames)
			games.POST("", gameHandler.CreateGame)
			games.GET("/:id", gameHandler.GetGame)
			games.POST("/:id/join", sessionHandler.Join)
			games.GET("/:id/scores", sessionHandler.GetScores)
			games.POST("/:id/scores", sessionHandler.SubmitScore)
			games.POST("/:id/next", sessionHandler.NextQuestion)
			games.POST("/:id/end", sessionHandler.EndGame)
		}
	}

	return r
}
