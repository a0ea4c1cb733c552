package routes

import (
	"net/http"
	"time"

	"webimmo/handlers"
	"webimmo/middleware"
	"webimmo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public listing catalog.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/houses")
	{
		api.GET("", hb.Listings.ListListingsHandler)
		api.GET("/search", hb.Listings.SearchListingsHandler)
		api.GET("/:id", hb.Listings.GetListingHandler)
	}
}

// RegisterReviewRoutes registers the public review summary endpoint.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/reviews", hb.Reviews.GetSummaryHandler)
}

// RegisterLeadRoutes registers the public lead-capture forms.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("/sale", hb.Leads.SubmitSaleLeadHandler)
		api.POST("/valuation", hb.Leads.SubmitValuationHandler)
		api.POST("/contact", hb.Leads.SubmitContactHandler)
	}
}

// RegisterArticleRoutes registers the public blog endpoints.
func RegisterArticleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/articles")
	{
		api.GET("", hb.Articles.ListArticlesHandler)
		api.GET("/:id", hb.Articles.GetArticleHandler)
	}
}

// RegisterAdminRoutes registers the credential-gated admin surface.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", handlers.AdminLoginHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.GET("/session", handlers.AdminSessionHandler)

		protected.POST("/houses", hb.Listings.CreateListingHandler)
		protected.PUT("/houses/:id", hb.Listings.UpdateListingHandler)
		protected.DELETE("/houses/:id", hb.Listings.DeleteListingHandler)

		protected.POST("/articles", hb.Articles.CreateArticleHandler)
		protected.PUT("/articles/:id", hb.Articles.UpdateArticleHandler)
		protected.DELETE("/articles/:id", hb.Articles.DeleteArticleHandler)

		protected.GET("/leads", hb.Leads.ListLeadsHandler)

		protected.POST("/media", hb.Storage.UploadMediaHandler)
		protected.GET("/media/url", hb.Storage.MediaURLHandler)
		protected.DELETE("/media", hb.Storage.DeleteMediaHandler)

		protected.POST("/reviews/sync", hb.Reviews.TriggerSyncHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes sets up CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterArticleRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
