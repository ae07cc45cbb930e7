package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/studyhub/studyhub-backend/config"
	"github.com/studyhub/studyhub-backend/controllers"
	"github.com/studyhub/studyhub-backend/routes"
	"github.com/studyhub/studyhub-backend/storage"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found")
	}

	config.InitDB()

	store, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("failed to initialize file storage: %v", err)
	}
	controllers.FileStore = store

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("CORS_ORIGIN", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-auth-token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, config.DB)

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "StudyHub server is running")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}
