package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adstats/campaign-stats-engine/internal/domain"
)

func TestInsertFactSQL_ConflitoDePrimeiraEscrita(t *testing.T) {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	metrics := domain.Metrics{
		Impressions: 100,
		Clicks:      5,
		Cost:        decimal.RequireFromString("12.50"),
	}

	tests := []struct {
		name           string
		key            domain.FactKey
		table          string
		conflictClause string
		argCount       int
	}{
		{
			name: "fato de busca",
			key: domain.FactKey{
				Kind:          domain.LeafKindSearch,
				SearchQueryID: "SQ1",
				KeywordID:     "KW1",
				AdID:          "AD1",
				Date:          date,
			},
			table:          searchFactsTable,
			conflictClause: "ON CONFLICT (search_query_id, keyword_id, ad_id, date) DO NOTHING",
			argCount:       9,
		},
		{
			name: "fato display",
			key: domain.FactKey{
				Kind: domain.LeafKindDisplay,
				AdID: "AD1",
				Date: date,
			},
			table:          displayFactsTable,
			conflictClause: "ON CONFLICT (ad_id, date) DO NOTHING",
			argCount:       7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := insertFactSQL(tt.key, metrics)

			assert.NoError(t, err)
			assert.Contains(t, query, "INSERT INTO "+tt.table)

			// O alvo do conflito é a própria chave primária: dois workers
			// inserindo a mesma chave nova não podem gerar erro de chave
			// duplicada, senão o perdedor seria recusado como violação de
			// integridade em vez de seguir como revisão.
			assert.Contains(t, query, tt.conflictClause)
			assert.Len(t, args, tt.argCount)
			assert.Contains(t, args, "2025-06-30")
		})
	}
}
