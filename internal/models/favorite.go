package models

import (
	"encoding/json"
	"time"
)

// Favorite is a saved result; the payload is stored exactly as the client sent it.
type Favorite struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

type FavoriteRequest struct {
	Payload json.RawMessage `json:"payload"`
}

type FavoritesResponse struct {
	Items []Favorite `json:"items"`
}

type FavoriteResponse struct {
	Item Favorite `json:"item"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
