package dto

import "time"

type NoticeDTO struct {
	Kind      string    `json:"kind" example:"insufficient_funds"`
	ProductID string    `json:"product_id" example:"6f1c2a8e-2b7d-4c61-9a3e-0d5f4b1e9c72"`
	Message   string    `json:"message" example:"failed to save votes, please refresh"`
	At        time.Time `json:"at" example:"2025-10-02T12:00:00Z"`
}

type SessionResponseDTO struct {
	OfficeID   string         `json:"office_id" example:"nyc"`
	Votes      map[string]int `json:"votes"`
	Balance    float64        `json:"balance" example:"7"`
	BonusCoins float64        `json:"bonus_coins" example:"0"`
	Pending    int            `json:"pending" example:"1"`
	Notices    []NoticeDTO    `json:"notices"`
}

type ProductVotesResponseDTO struct {
	ProductID   string         `json:"product_id" example:"6f1c2a8e-2b7d-4c61-9a3e-0d5f4b1e9c72"`
	OfficeID    string         `json:"office_id" example:"nyc"`
	Votes       int            `json:"votes" example:"3"`
	UserVotes   map[string]int `json:"user_votes"`
	LastVotedAt *time.Time     `json:"last_voted_at,omitempty" example:"2025-10-02T12:00:00Z"`
}
