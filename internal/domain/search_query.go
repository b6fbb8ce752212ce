package domain

// SearchQuery é um texto de busca literal que disparou anúncios.
// Globalmente único pelo texto.
type SearchQuery struct {
	ID        string `json:"id"`
	QueryText string `json:"query_text"`
}
