package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *FeedHandler) GetHealth(c *gin.Context) {
	_, err := h.store.CountPosts(0)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
