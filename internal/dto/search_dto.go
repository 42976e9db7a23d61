package dto

import "github.com/bioscizone/bioscizone-api/internal/models"

// SearchResponse holds the two independent result lists of a global search.
// Buddies and articles are matched separately and never merged or ranked.
type SearchResponse struct {
	Buddies  []models.Buddy   `json:"buddies"`
	Articles []models.Article `json:"articles"`
}
