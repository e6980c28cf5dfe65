package handler

import (
	"log/slog"
	"net/http"

	"tyfeed/internal/model"

	"github.com/gin-gonic/gin"
)

type ConfigStore interface {
	LoadFeedConfig() (*model.FeedConfig, error)
}

const configContextKey = "feedConfig"

// APIKeyAuth gates every feed endpoint. The configuration is read fresh on
// each request; a load failure is an operator error (500), a key mismatch a
// client error (403). An empty configured key rejects everything.
func APIKeyAuth(store ConfigStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := store.LoadFeedConfig()
		if err != nil {
			slog.Error("error loading feed config", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "feed configuration error: " + err.Error(),
			})
			return
		}

		key := requestValue(c, "api_key")
		if cfg.APIKey == "" || key != cfg.APIKey {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "Invalid API key",
			})
			return
		}

		c.Set(configContextKey, cfg)
		c.Next()
	}
}

func feedConfig(c *gin.Context) *model.FeedConfig {
	if v, ok := c.Get(configContextKey); ok {
		if cfg, ok := v.(*model.FeedConfig); ok {
			return cfg
		}
	}
	return &model.FeedConfig{}
}

// NoCache disables response caching; feed content can change between calls.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
