package content

import (
	"net/http"

	"gluca-api/internal/core/content"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// HandleArticles lists all learning articles.
func HandleArticles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"articles": content.Articles(),
	})
}

// HandleArticle returns one article by slug.
func HandleArticle(c *gin.Context) {
	article, ok := content.ArticleBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Article not found",
			"code":  common.ErrCodeNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, article)
}
