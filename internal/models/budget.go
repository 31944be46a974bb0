package models

import "time"

const DefaultBudgetStatus = "On Track"

type Budget struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Month       string    `json:"month"`
	Description string    `json:"description"`
	Spent       float64   `json:"spent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateBudgetRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Month       string  `json:"month"`
	Description string  `json:"description"`
}
