package domain

import (
	"fmt"
	"time"
)

// LeafKind distingue as duas granularidades de fato folha: o caminho de
// busca (query × keyword × anúncio) e o caminho display/vídeo (somente
// anúncio, quando não há query de busca).
type LeafKind string

const (
	LeafKindSearch  LeafKind = "SEARCH"
	LeafKindDisplay LeafKind = "DISPLAY"
)

// FactKey identifica um fato folha diário. A identidade é imutável; apenas
// os valores de métricas de um fato podem mudar em reingestões.
type FactKey struct {
	Kind          LeafKind  `json:"kind"`
	SearchQueryID string    `json:"search_query_id,omitempty"`
	KeywordID     string    `json:"keyword_id,omitempty"`
	AdID          string    `json:"ad_id"`
	Date          time.Time `json:"date"`
}

func (k FactKey) String() string {
	if k.Kind == LeafKindSearch {
		return fmt.Sprintf("search/%s/%s/%s/%s", k.SearchQueryID, k.KeywordID, k.AdID, k.Date.Format(time.DateOnly))
	}
	return fmt.Sprintf("display/%s/%s", k.AdID, k.Date.Format(time.DateOnly))
}

// LeafFact é o registro diário de performance na granularidade mais fina.
type LeafFact struct {
	Key       FactKey   `json:"key"`
	Metrics   Metrics   `json:"metrics"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertResult é o desfecho de um upsert no Fact Store.
type UpsertResult string

const (
	UpsertInserted  UpsertResult = "inserted"
	UpsertUpdated   UpsertResult = "updated"
	UpsertUnchanged UpsertResult = "unchanged"
)

// ChangeEvent é emitido pelo Fact Store para cada inserção ou atualização
// efetiva e consumido pelo agregador de rollups. Old é nil em inserções.
// Resultados "unchanged" não emitem evento: é essa supressão que impede
// dupla contagem em reingestões idênticas.
type ChangeEvent struct {
	Key FactKey
	Old *Metrics
	New Metrics
}

// Delta retorna a variação de métricas que o evento representa.
func (e ChangeEvent) Delta() Metrics {
	if e.Old == nil {
		return e.New
	}
	return e.New.Sub(*e.Old)
}
