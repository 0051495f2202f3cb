package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamly/cmd/fx/credential_fx"
	"roamly/cmd/fx/export_fx"
	"roamly/cmd/fx/planner_fx"
	"roamly/internal/api/controllers"
	"roamly/pkg/middleware"
)

func main() {
	// Best-effort: a missing .env just means plain environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using environment variables")
	}

	app := fx.New(
		credential_fx.Module,
		planner_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	exportController *controllers.ExportController,
	credentialController *controllers.CredentialController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, exportController, credentialController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	exportController *controllers.ExportController,
	credentialController *controllers.CredentialController) {

	itineraryGroup := r.Group("/api/itinerary")
	itineraryGroup.POST("/generate", plannerController.GenerateItineraryHandler)
	itineraryGroup.GET("", plannerController.CurrentItineraryHandler)
	itineraryGroup.POST("/reset", plannerController.ResetItineraryHandler)
	itineraryGroup.GET("/progress", plannerController.ProgressLabelsHandler)
	itineraryGroup.GET("/export/json", exportController.ExportJSONHandler)
	itineraryGroup.GET("/export/text", exportController.ExportTextHandler)

	credentialGroup := r.Group("/api/credentials")
	credentialGroup.POST("", credentialController.SaveCredentialHandler)
	credentialGroup.GET("/status", credentialController.CredentialStatusHandler)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
