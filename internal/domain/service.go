package domain

import "time"

// Service é o produto/oferta promovido, raiz da atribuição de performance.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
