package repository

import (
	"database/sql"
	"fmt"

	"tyfeed/internal/model"
)

type ConfigRepository struct {
	db *sql.DB
}

func NewConfigRepository(db *sql.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// LoadFeedConfig reads the feed configuration fresh from the setting table.
// It is called once per request so settings changes apply without a restart.
func (r *ConfigRepository) LoadFeedConfig() (*model.FeedConfig, error) {
	var value []byte
	err := r.db.QueryRow(`
		SELECT value
		FROM setting
		WHERE name = $1
	`, model.SettingName).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("feed configuration %q not found", model.SettingName)
	}

	if err != nil {
		return nil, err
	}

	return model.ParseFeedConfig(value)
}
