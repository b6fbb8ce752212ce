package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a        Metrics
		b        Metrics
		expected bool
	}{
		{
			name: "Mesmos valores com escalas decimais diferentes são iguais",
			a: Metrics{
				Impressions: 100,
				Clicks:      5,
				Cost:        decimal.RequireFromString("12.50"),
				Conversions: decimal.RequireFromString("1"),
			},
			b: Metrics{
				Impressions: 100,
				Clicks:      5,
				Cost:        decimal.RequireFromString("12.5000"),
				Conversions: decimal.RequireFromString("1.000"),
			},
			expected: true,
		},
		{
			name: "Diferença em um único campo torna as métricas distintas",
			a: Metrics{
				Impressions: 100,
				Clicks:      5,
				Cost:        decimal.RequireFromString("12.50"),
			},
			b: Metrics{
				Impressions: 100,
				Clicks:      6,
				Cost:        decimal.RequireFromString("12.50"),
			},
			expected: false,
		},
		{
			name:     "Métricas zeradas são iguais entre si",
			a:        ZeroMetrics(),
			b:        Metrics{},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestMetrics_AddSub(t *testing.T) {
	a := Metrics{
		Impressions:     100,
		Clicks:          5,
		Cost:            decimal.RequireFromString("12.50"),
		Conversions:     decimal.RequireFromString("1"),
		ConversionValue: decimal.RequireFromString("45.00"),
	}
	b := Metrics{
		Impressions:     100,
		Clicks:          6,
		Cost:            decimal.RequireFromString("13.00"),
		Conversions:     decimal.RequireFromString("1"),
		ConversionValue: decimal.RequireFromString("45.00"),
	}

	sum := a.Add(b)
	assert.Equal(t, int64(200), sum.Impressions)
	assert.Equal(t, int64(11), sum.Clicks)
	assert.True(t, sum.Cost.Equal(decimal.RequireFromString("25.50")))

	// O delta de uma revisão é novo - antigo, campo a campo.
	delta := b.Sub(a)
	assert.Equal(t, int64(0), delta.Impressions)
	assert.Equal(t, int64(1), delta.Clicks)
	assert.True(t, delta.Cost.Equal(decimal.RequireFromString("0.50")))
	assert.True(t, delta.Conversions.IsZero())
	assert.True(t, delta.ConversionValue.IsZero())

	assert.True(t, a.Sub(a).IsZero())
}

func TestChangeEvent_Delta(t *testing.T) {
	old := Metrics{
		Impressions: 100,
		Clicks:      5,
		Cost:        decimal.RequireFromString("12.50"),
	}
	updated := Metrics{
		Impressions: 100,
		Clicks:      6,
		Cost:        decimal.RequireFromString("13.00"),
	}

	// Inserção: o delta é o próprio valor novo.
	insertion := ChangeEvent{New: updated}
	assert.True(t, insertion.Delta().Equal(updated))

	// Revisão: o delta é a diferença para o valor antigo.
	revision := ChangeEvent{Old: &old, New: updated}
	delta := revision.Delta()
	assert.Equal(t, int64(1), delta.Clicks)
	assert.True(t, delta.Cost.Equal(decimal.RequireFromString("0.50")))
}

func TestMetrics_KPIs(t *testing.T) {
	m := Metrics{
		Impressions:     1000,
		Clicks:          50,
		Cost:            decimal.RequireFromString("25.00"),
		Conversions:     decimal.RequireFromString("5"),
		ConversionValue: decimal.RequireFromString("100.00"),
	}

	kpis := m.KPIs()

	assert.NotNil(t, kpis.CTR)
	assert.Equal(t, 5.0, *kpis.CTR)

	assert.NotNil(t, kpis.CPC)
	assert.Equal(t, 0.5, *kpis.CPC)

	assert.NotNil(t, kpis.CVR)
	assert.Equal(t, 10.0, *kpis.CVR)

	assert.NotNil(t, kpis.CPA)
	assert.Equal(t, 5.0, *kpis.CPA)

	assert.NotNil(t, kpis.ROAS)
	assert.Equal(t, 400.0, *kpis.ROAS)
}

func TestMetrics_KPIs_DivisaoPorZero(t *testing.T) {
	// Denominador zero produz campo ausente, não zero.
	m := Metrics{
		Impressions: 100,
		Cost:        decimal.RequireFromString("10.00"),
	}

	kpis := m.KPIs()

	assert.NotNil(t, kpis.CTR)
	assert.Equal(t, 0.0, *kpis.CTR)
	assert.Nil(t, kpis.CPC)
	assert.Nil(t, kpis.CVR)
	assert.Nil(t, kpis.CPA)
	assert.NotNil(t, kpis.ROAS)

	assert.Nil(t, ZeroMetrics().KPIs().CTR)
}
