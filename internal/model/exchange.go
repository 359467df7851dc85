package model

import "time"

// Exchange is a periodic outcome-exchange (results sharing) event.
type Exchange struct {
	ExchangeID string    `json:"exchange_id"`
	Year       int       `json:"year"`
	Round      int       `json:"round"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpsertExchangeRequest is the payload for registering or replacing an exchange.
type UpsertExchangeRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	Round int `json:"round" binding:"required,min=1"`
}

// ExchangeFilter narrows an exchange listing.
type ExchangeFilter struct {
	Year  int
	Round int
}
