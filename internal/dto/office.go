package dto

import "time"

type VotingPeriodDTO struct {
	StartDate time.Time `json:"start_date" example:"2025-10-01T00:00:00Z"`
	EndDate   time.Time `json:"end_date" example:"2025-10-08T00:00:00Z"`
	Status    string    `json:"status" example:"active"`
}

type OfficeResponseDTO struct {
	ID                  string          `json:"id" example:"nyc"`
	Name                string          `json:"name" example:"New York"`
	Timezone            string          `json:"timezone" example:"America/New_York"`
	Czar                *string         `json:"czar,omitempty" example:"u1"`
	TippingEnabled      bool            `json:"tipping_enabled" example:"true"`
	CurrentVotingPeriod VotingPeriodDTO `json:"current_voting_period"`
	LastResetAt         *time.Time      `json:"last_reset_at,omitempty" example:"2025-10-01T00:00:00Z"`
}

type LeaderboardEntryDTO struct {
	Rank        int        `json:"rank" example:"1"`
	Product     ProductDTO `json:"product"`
	Votes       int        `json:"votes" example:"12"`
	Voters      int        `json:"voters" example:"5"`
	LastVotedAt *time.Time `json:"last_voted_at,omitempty" example:"2025-10-02T12:00:00Z"`
}

type SetCzarRequestDTO struct {
	UserID string `json:"user_id" example:"u1"`
}

type SetTippingRequestDTO struct {
	Enabled bool `json:"enabled" example:"true"`
}

type StartPeriodRequestDTO struct {
	EndDate time.Time `json:"end_date" example:"2025-10-08T00:00:00Z"`
}
