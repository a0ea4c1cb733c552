package handlers

import (
	"net/http"

	"webimmo/models"
	"webimmo/services/article"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticlesHandler serves the blog section.
type ArticlesHandler struct {
	Service article.ArticleService
}

// NewArticlesHandler creates a new ArticlesHandler.
func NewArticlesHandler(svc article.ArticleService) *ArticlesHandler {
	return &ArticlesHandler{Service: svc}
}

// ListArticlesHandler returns all articles, optionally narrowed by the
// "category" query parameter.
func (h *ArticlesHandler) ListArticlesHandler(c *gin.Context) {
	var (
		articles []models.Article
		err      error
	)
	if category := c.Query("category"); category != "" {
		articles, err = h.Service.GetByCategory(c.Request.Context(), models.ArticleCategory(category))
	} else {
		articles, err = h.Service.GetAll(c.Request.Context())
	}
	if err != nil {
		zap.L().Error("Failed to fetch articles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticleHandler returns one article by ID.
func (h *ArticlesHandler) GetArticleHandler(c *gin.Context) {
	a, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// CreateArticleHandler inserts a new article. Admin only.
func (h *ArticlesHandler) CreateArticleHandler(c *gin.Context) {
	var a models.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article payload"})
		return
	}
	created, err := h.Service.Create(c.Request.Context(), a)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateArticleHandler replaces an article. Admin only.
func (h *ArticlesHandler) UpdateArticleHandler(c *gin.Context) {
	var a models.Article
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article payload"})
		return
	}
	a.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), a)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteArticleHandler removes an article. Admin only.
func (h *ArticlesHandler) DeleteArticleHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}
