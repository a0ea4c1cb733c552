// File: webimmo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webimmo/config"
	"webimmo/cron"
	"webimmo/database"
	articleRepoPkg "webimmo/database/repository/article"
	leadRepoPkg "webimmo/database/repository/lead"
	listingRepoPkg "webimmo/database/repository/listing"
	reviewsRepoPkg "webimmo/database/repository/reviews"
	"webimmo/handlers"
	"webimmo/middleware"
	"webimmo/routes"
	"webimmo/services/article"
	"webimmo/services/leads"
	"webimmo/services/listing"
	"webimmo/services/reviews"
	"webimmo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	reviewsRepo := reviewsRepoPkg.NewMongoReviewsRepo()
	articleRepo := articleRepoPkg.NewMongoArticleRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()

	// services.
	listingService := &listing.DefaultListingService{
		Repo:  listingRepo,
		Cache: utils.GetCacheClient(),
	}
	reviewService := reviews.NewReviewService(
		reviewsRepo,
		reviews.NewPlacesClient(),
		config.AppConfig.GoogleAPIKey,
		config.AppConfig.GooglePlaceID,
	)
	articleService := &article.DefaultArticleService{Repo: articleRepo}
	leadService := &leads.DefaultLeadService{
		Repo:  leadRepo,
		Relay: leads.NewEmailJSRelay(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Listings: handlers.NewListingHandler(listingService),
		Reviews:  handlers.NewReviewsHandler(reviewService),
		Leads:    handlers.NewLeadsHandler(leadService),
		Articles: handlers.NewArticlesHandler(articleService),
		Storage:  handlers.NewStorageHandler(storageService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background review sync plus service health monitoring.
	cron.InitReviewSyncWorker(reviewService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
