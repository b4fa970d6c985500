package leaderboard

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/verte-zerg/wordrush/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func encode(entries []model.LeaderboardEntry) (string, error) {
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decode(raw string) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	for i := range entries {
		if err := validate.Struct(entries[i]); err != nil {
			return nil, fmt.Errorf("invalid entry %d: %w", i, err)
		}
	}
	return entries, nil
}
