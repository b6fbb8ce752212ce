package domain

import "time"

// AdAccount é uma conta de anúncios na plataforma externa.
type AdAccount struct {
	ID              string    `json:"id"`
	GoogleAccountID string    `json:"google_account_id"`
	Name            string    `json:"name"`
	CreatedAt       time.Time `json:"created_at"`
}
