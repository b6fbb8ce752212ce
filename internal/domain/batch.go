package domain

import "time"

// FactRecord é um registro de fato diário como chega do cliente da
// plataforma de anúncios, chaveado por identificadores externos. Para o
// caminho de busca, QueryText + GoogleKeywordID + GoogleAdID; para o
// caminho display, apenas GoogleAdID.
type FactRecord struct {
	Kind            LeafKind  `json:"kind"`
	QueryText       string    `json:"query_text,omitempty"`
	GoogleKeywordID string    `json:"google_keyword_id,omitempty"`
	GoogleAdID      string    `json:"google_ad_id"`
	Date            time.Time `json:"date"`
	Metrics         Metrics   `json:"metrics"`
}

// RejectedRecord carrega o registro recusado e o motivo, para o relatório
// do lote.
type RejectedRecord struct {
	Record FactRecord `json:"record"`
	Reason string     `json:"reason"`
}

// BatchReport resume o processamento de um lote de ingestão. Um registro
// "revised" também conta como accepted: a revisão é uma flag de auditoria,
// não uma recusa.
type BatchReport struct {
	Accepted int              `json:"accepted"`
	Revised  int              `json:"revised"`
	Rejected []RejectedRecord `json:"rejected"`

	Inserted  int `json:"inserted"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}
