package domain

import (
	"github.com/shopspring/decimal"

	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

// Metrics agrupa as cinco métricas diárias de performance usadas em todos os
// níveis da hierarquia (fato folha, ad group, campanha, conta, serviço).
// Impressões e cliques são inteiros exatos; custo, conversões e valor de
// conversão usam decimal de ponto fixo para evitar acúmulo de erro de
// ponto flutuante ao longo de milhões de deltas.
type Metrics struct {
	Impressions     int64           `json:"impressions"`
	Clicks          int64           `json:"clicks"`
	Cost            decimal.Decimal `json:"cost"`
	Conversions     decimal.Decimal `json:"conversions"`
	ConversionValue decimal.Decimal `json:"conversion_value"`
}

func ZeroMetrics() Metrics {
	return Metrics{
		Cost:            decimal.Zero,
		Conversions:     decimal.Zero,
		ConversionValue: decimal.Zero,
	}
}

// Add retorna a soma campo a campo de duas métricas
func (m Metrics) Add(other Metrics) Metrics {
	return Metrics{
		Impressions:     m.Impressions + other.Impressions,
		Clicks:          m.Clicks + other.Clicks,
		Cost:            m.Cost.Add(other.Cost),
		Conversions:     m.Conversions.Add(other.Conversions),
		ConversionValue: m.ConversionValue.Add(other.ConversionValue),
	}
}

// Sub retorna a diferença campo a campo de duas métricas. É usada pelo
// agregador para calcular o delta (novo - antigo) de um fato revisado.
func (m Metrics) Sub(other Metrics) Metrics {
	return Metrics{
		Impressions:     m.Impressions - other.Impressions,
		Clicks:          m.Clicks - other.Clicks,
		Cost:            m.Cost.Sub(other.Cost),
		Conversions:     m.Conversions.Sub(other.Conversions),
		ConversionValue: m.ConversionValue.Sub(other.ConversionValue),
	}
}

// Equal compara valores, não representações: 12.50 e 12.5000 são iguais.
// O Fact Store depende dessa comparação para devolver "unchanged" e não
// disparar recomputação desnecessária.
func (m Metrics) Equal(other Metrics) bool {
	return m.Impressions == other.Impressions &&
		m.Clicks == other.Clicks &&
		m.Cost.Equal(other.Cost) &&
		m.Conversions.Equal(other.Conversions) &&
		m.ConversionValue.Equal(other.ConversionValue)
}

func (m Metrics) IsZero() bool {
	return m.Impressions == 0 &&
		m.Clicks == 0 &&
		m.Cost.IsZero() &&
		m.Conversions.IsZero() &&
		m.ConversionValue.IsZero()
}

// KPIMetrics são os indicadores derivados expostos na leitura de rollups.
type KPIMetrics struct {
	CTR  *float64 `json:"ctr,omitempty"`
	CPC  *float64 `json:"cpc,omitempty"`
	CVR  *float64 `json:"cvr,omitempty"`
	CPA  *float64 `json:"cpa,omitempty"`
	ROAS *float64 `json:"roas,omitempty"`
}

// KPIs calcula os indicadores derivados das métricas brutas. Divisões por
// zero resultam em campo ausente, não em zero (um CPC de 0 significa
// cliques grátis, não ausência de cliques).
func (m Metrics) KPIs() KPIMetrics {
	var kpis KPIMetrics

	if m.Impressions > 0 {
		ctr := utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
		kpis.CTR = &ctr
	}

	if m.Clicks > 0 {
		clicks := decimal.NewFromInt(m.Clicks)

		cpc := utils.RoundWithTwoDecimalPlace(m.Cost.Div(clicks).InexactFloat64())
		kpis.CPC = &cpc

		cvr := utils.RoundWithTwoDecimalPlace(m.Conversions.Div(clicks).Mul(decimal.NewFromInt(100)).InexactFloat64())
		kpis.CVR = &cvr
	}

	if m.Conversions.IsPositive() {
		cpa := utils.RoundWithTwoDecimalPlace(m.Cost.Div(m.Conversions).InexactFloat64())
		kpis.CPA = &cpa
	}

	if m.Cost.IsPositive() {
		roas := utils.RoundWithTwoDecimalPlace(m.ConversionValue.Div(m.Cost).Mul(decimal.NewFromInt(100)).InexactFloat64())
		kpis.ROAS = &roas
	}

	return kpis
}
