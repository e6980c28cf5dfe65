package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SettingName is the setting row holding the feed API configuration.
const SettingName = "feed_api"

// FeedConfig is the per-request feed configuration. PageSize 0 means
// pagination is disabled and the full matching set is returned as one page.
type FeedConfig struct {
	APIKey   string
	PageSize int
}

// storedConfig mirrors the JSON value of the setting row. PageSize is kept
// as a string because it is operator input from the settings UI.
type storedConfig struct {
	APIKey   string `json:"apiKey"`
	PageSize string `json:"pageSize"`
}

// ParseFeedConfig decodes the stored setting value into a FeedConfig.
// An empty, non-numeric or non-positive pageSize disables pagination.
// Malformed JSON is a configuration error.
func ParseFeedConfig(value []byte) (*FeedConfig, error) {
	var stored storedConfig
	if err := json.Unmarshal(value, &stored); err != nil {
		return nil, fmt.Errorf("invalid feed config: %w", err)
	}

	cfg := &FeedConfig{APIKey: stored.APIKey}

	raw := strings.TrimSpace(stored.PageSize)
	if raw != "" {
		size, err := strconv.Atoi(raw)
		if err == nil && size > 0 {
			cfg.PageSize = size
		}
	}

	return cfg, nil
}
