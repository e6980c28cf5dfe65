package main

import (
	"log"
	"net/http"
	"os"

	"tyfeed/db"
	"tyfeed/internal/handler"
	"tyfeed/internal/render"
	"tyfeed/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	articleRepo := repository.NewArticleRepository(db.DB)
	configRepo := repository.NewConfigRepository(db.DB)
	pipeline := render.NewPipeline(render.NewGoldmarkRenderer())
	feedHandler := handler.NewFeedHandler(articleRepo, pipeline)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.ErrorResponse{
			Code:    http.StatusMethodNotAllowed,
			Message: "Method not allowed",
		})
	})

	api := r.Group("/api", handler.NoCache(), handler.APIKeyAuth(configRepo))
	api.GET("/posts/recent", feedHandler.GetRecentPosts)
	api.GET("/posts/category", feedHandler.GetCategoryPosts)
	api.POST("/posts/push", feedHandler.PushPost)

	r.GET("/health", feedHandler.GetHealth)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	err = r.Run(addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
