package domain

import "time"

// RollupLevel identifica o nível de ancestral de um rollup materializado.
// Conta e serviço são visões derivadas por soma sobre rollups de campanha,
// não linhas materializadas.
type RollupLevel string

const (
	RollupLevelAdGroup  RollupLevel = "AD_GROUP"
	RollupLevelCampaign RollupLevel = "CAMPAIGN"

	// Níveis derivados, disponíveis apenas para leitura: somas sobre os
	// rollups de campanha, nunca linhas próprias.
	RollupLevelAccount RollupLevel = "ACCOUNT"
	RollupLevelService RollupLevel = "SERVICE"
)

func (l RollupLevel) Valid() bool {
	switch l {
	case RollupLevelAdGroup, RollupLevelCampaign, RollupLevelAccount, RollupLevelService:
		return true
	}
	return false
}

// Materialized informa se o nível possui tabela própria de rollups.
func (l RollupLevel) Materialized() bool {
	return l == RollupLevelAdGroup || l == RollupLevelCampaign
}

// Rollup é o agregado diário de um ancestral: a soma exata das métricas de
// todos os fatos folha cujo caminho de hierarquia passa por ele na data.
// Estado derivado, escrito exclusivamente pelo agregador.
type Rollup struct {
	Level    RollupLevel `json:"level"`
	EntityID string      `json:"entity_id"`
	Date     time.Time   `json:"date"`
	Metrics  Metrics     `json:"metrics"`
}

// AncestorPath é a cadeia completa de ancestrais de um fato folha,
// resolvida contra o estado atual (não versionado) das dimensões.
type AncestorPath struct {
	AdGroupID  string
	CampaignID string
	AccountID  string
	ServiceID  string
}

// DriftReport registra uma divergência entre o rollup armazenado e a soma
// verdadeira dos fatos folha correntes. Advisory: nunca bloqueia ingestão.
type DriftReport struct {
	Level    RollupLevel `json:"level"`
	EntityID string      `json:"entity_id"`
	Date     time.Time   `json:"date"`
	Stored   Metrics     `json:"stored"`
	Computed Metrics     `json:"computed"`
}
