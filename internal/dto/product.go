package dto

import "time"

type ProductDTO struct {
	ID        string    `json:"id" example:"6f1c2a8e-2b7d-4c61-9a3e-0d5f4b1e9c72"`
	Name      string    `json:"name" example:"Sea Salt Kettle Chips"`
	Category  string    `json:"category" example:"Chips"`
	Price     float64   `json:"price" example:"3.49"`
	ImageURL  string    `json:"image_url,omitempty" example:"https://example.com/chips.png"`
	Tags      []string  `json:"tags"`
	IsActive  bool      `json:"is_active" example:"true"`
	AddedBy   string    `json:"added_by,omitempty" example:"u1"`
	CreatedAt time.Time `json:"created_at" example:"2025-10-01T09:00:00Z"`
}

type CreateProductRequestDTO struct {
	Name     string   `json:"name" example:"Sea Salt Kettle Chips"`
	Category string   `json:"category" example:"Chips"`
	Price    float64  `json:"price" example:"3.49"`
	ImageURL string   `json:"image_url" example:"https://example.com/chips.png"`
	Tags     []string `json:"tags"`
}

type SetActiveRequestDTO struct {
	Active bool `json:"active" example:"false"`
}
