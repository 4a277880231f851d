package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config.ConnectDB()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "http://localhost:5173"
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Team server is running")
	})

	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.L().Infow("server listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		logger.L().Fatalw("server exited", "error", err)
	}
}
