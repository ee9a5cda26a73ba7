package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"warung-catalog/internal/advisor"
	"warung-catalog/internal/cache"
	"warung-catalog/internal/catalog"
	"warung-catalog/internal/config"
	"warung-catalog/internal/database"
	"warung-catalog/internal/routes"
	"warung-catalog/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	client := database.Connect(cfg.MongoURI)
	collection := client.Database(cfg.MongoDB).Collection("products")

	cat := catalog.New(store.NewMongoStore(collection))
	cat.SetFailureHandler(func(op, id string, err error) {
		log.Printf("⚠️ remote %s failed for product %s: %v (catalog reconciled)", op, id, err)
	})

	// Carga inicial; si el store no responde arrancamos vacíos con failed=true.
	if err := cat.Reload(context.Background()); err != nil {
		log.Printf("⚠️ initial catalog load failed: %v", err)
	}

	suggestions := cache.New(cfg.SuggestionTTL)
	defer suggestions.Close()
	adv := advisor.New(cfg.OpenAIKey, cfg.OpenAIModel, suggestions)

	router := gin.Default()
	routes.RegisterRoutes(router, cat, adv)

	go func() {
		log.Println("🚀 Server running on port", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatalf("❌ server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Drenar sincronizaciones en vuelo antes de salir.
	log.Println("⏳ Draining pending catalog syncs...")
	cat.Wait()

	if err := client.Disconnect(context.Background()); err != nil {
		log.Printf("⚠️ mongo disconnect: %v", err)
	}
	log.Println("👋 Shutdown complete")
}
