package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

const (
	searchFactsTable  = "search_query_keyword_ad_daily_stats"
	displayFactsTable = "display_ad_daily_stats"

	metricColumns = "impressions, clicks, cost, conversions, conversion_value"
)

// RollupKey identifica uma linha de agregado (entidade ancestral, dia) em
// mapas de somas. A data é o formato YYYY-MM-DD para comparação estável.
type RollupKey struct {
	EntityID string
	Date     string
}

// FactRepository é o Fact Store: fatos folha diários imutáveis por chave,
// com upsert idempotente. Upsert recebe um Queryer para participar da
// transação por chave aberta pelo reconciliador (fato + deltas de rollup
// na mesma transação).
type FactRepository interface {
	Upsert(ctx context.Context, q postgres.Queryer, key domain.FactKey, metrics domain.Metrics) (domain.UpsertResult, *domain.ChangeEvent, error)
	Get(ctx context.Context, key domain.FactKey) (*domain.LeafFact, error)

	// Somas verdadeiras sobre os fatos correntes, atravessando a
	// hierarquia atual. Usadas pelo verificador de consistência e pela
	// reconstrução completa de rollups.
	SumByAdGroupAndDate(ctx context.Context, adGroupIDs []string, startDate, endDate time.Time) (map[RollupKey]domain.Metrics, error)
	SumByCampaignAndDate(ctx context.Context, campaignIDs []string, startDate, endDate time.Time) (map[RollupKey]domain.Metrics, error)
}

type factRepository struct {
	conn *postgres.Connection
}

func NewFactRepository(conn *postgres.Connection) FactRepository {
	return &factRepository{
		conn: conn,
	}
}

func (r *factRepository) Upsert(ctx context.Context, q postgres.Queryer, key domain.FactKey, metrics domain.Metrics) (domain.UpsertResult, *domain.ChangeEvent, error) {
	table, keyClause := factTableAndKey(key)

	stored, found, err := r.lockRow(ctx, q, table, keyClause)
	if err != nil {
		return "", nil, err
	}

	if !found {
		inserted, err := r.insert(ctx, q, key, metrics)
		if err != nil {
			return "", nil, err
		}
		if inserted {
			return domain.UpsertInserted, &domain.ChangeEvent{Key: key, Old: nil, New: metrics}, nil
		}

		// Outra transação gravou a primeira versão desta chave entre a
		// leitura e o insert. O DO NOTHING do insert não devolve erro
		// nesse caso; a releitura pega o lock da linha recém-comprometida
		// e o registro segue como revisão normal.
		stored, found, err = r.lockRow(ctx, q, table, keyClause)
		if err != nil {
			return "", nil, err
		}
		if !found {
			return "", nil, fmt.Errorf("fato ausente após conflito de inserção: %s", key.String())
		}
	}

	// Comparação exata de valores evita emitir evento para reingestões
	// idênticas: é o que torna o replay de lotes inofensivo.
	if stored.Equal(metrics) {
		return domain.UpsertUnchanged, nil, nil
	}

	if err := r.update(ctx, q, table, keyClause, metrics); err != nil {
		return "", nil, err
	}

	old := stored
	return domain.UpsertUpdated, &domain.ChangeEvent{Key: key, Old: &old, New: metrics}, nil
}

// lockRow lê as métricas correntes da chave com FOR UPDATE, serializando
// upserts concorrentes da mesma chave dentro da transação do chamador.
func (r *factRepository) lockRow(ctx context.Context, q postgres.Queryer, table string, keyClause squirrel.Eq) (domain.Metrics, bool, error) {
	selectSQL, selectArgs, err := squirrel.
		Select(metricColumns).
		From(table).
		Where(keyClause).
		Suffix("FOR UPDATE").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.Metrics{}, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stored := domain.ZeroMetrics()
	row := q.QueryRowContext(ctx, selectSQL, selectArgs...)
	err = row.Scan(&stored.Impressions, &stored.Clicks, &stored.Cost, &stored.Conversions, &stored.ConversionValue)
	if err == sql.ErrNoRows {
		return stored, false, nil
	}
	if err != nil {
		return domain.Metrics{}, false, fmt.Errorf("erro ao escanear fato: %w", err)
	}

	return stored, true, nil
}

// insertFactSQL monta o insert da primeira versão do fato. O ON CONFLICT
// DO NOTHING cobre a corrida de primeira escrita da mesma chave: o
// perdedor não recebe erro de chave duplicada, apenas zero linhas.
func insertFactSQL(key domain.FactKey, metrics domain.Metrics) (string, []any, error) {
	if key.Kind == domain.LeafKindSearch {
		return squirrel.StatementBuilder.
			Insert(searchFactsTable).
			Columns("search_query_id", "keyword_id", "ad_id", "date", "impressions", "clicks", "cost", "conversions", "conversion_value").
			Values(key.SearchQueryID, key.KeywordID, key.AdID, key.Date.Format(time.DateOnly),
				metrics.Impressions, metrics.Clicks, metrics.Cost, metrics.Conversions, metrics.ConversionValue).
			Suffix("ON CONFLICT (search_query_id, keyword_id, ad_id, date) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	}

	return squirrel.StatementBuilder.
		Insert(displayFactsTable).
		Columns("ad_id", "date", "impressions", "clicks", "cost", "conversions", "conversion_value").
		Values(key.AdID, key.Date.Format(time.DateOnly),
			metrics.Impressions, metrics.Clicks, metrics.Cost, metrics.Conversions, metrics.ConversionValue).
		Suffix("ON CONFLICT (ad_id, date) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// insert grava a primeira versão do fato. Retorna false sem erro quando
// outra transação inseriu a mesma chave primeiro.
func (r *factRepository) insert(ctx context.Context, q postgres.Queryer, key domain.FactKey, metrics domain.Metrics) (bool, error) {
	query, args, err := insertFactSQL(key, metrics)
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, wrapConstraintError(err, "erro ao inserir fato")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao verificar linhas inseridas: %w", err)
	}

	return affected > 0, nil
}

func (r *factRepository) update(ctx context.Context, q postgres.Queryer, table string, keyClause squirrel.Eq, metrics domain.Metrics) error {
	query, args, err := squirrel.StatementBuilder.
		Update(table).
		Set("impressions", metrics.Impressions).
		Set("clicks", metrics.Clicks).
		Set("cost", metrics.Cost).
		Set("conversions", metrics.Conversions).
		Set("conversion_value", metrics.ConversionValue).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(keyClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapConstraintError(err, "erro ao atualizar fato")
	}

	return nil
}

func (r *factRepository) Get(ctx context.Context, key domain.FactKey) (*domain.LeafFact, error) {
	table, keyClause := factTableAndKey(key)

	query, args, err := squirrel.
		Select(metricColumns + ", created_at, updated_at").
		From(table).
		Where(keyClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	fact := &domain.LeafFact{Key: key, Metrics: domain.ZeroMetrics()}
	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&fact.Metrics.Impressions,
		&fact.Metrics.Clicks,
		&fact.Metrics.Cost,
		&fact.Metrics.Conversions,
		&fact.Metrics.ConversionValue,
		&fact.CreatedAt,
		&fact.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear fato: %w", err)
	}

	return fact, nil
}

// SumByAdGroupAndDate soma fatos dos dois caminhos (busca e display) por
// (ad group, dia). Fatos de busca chegam ao ad group pela keyword; fatos
// display chegam pelo anúncio.
func (r *factRepository) SumByAdGroupAndDate(ctx context.Context, adGroupIDs []string, startDate, endDate time.Time) (map[RollupKey]domain.Metrics, error) {
	if len(adGroupIDs) == 0 {
		return map[RollupKey]domain.Metrics{}, nil
	}

	sums := make(map[RollupKey]domain.Metrics)

	searchBuilder := squirrel.
		Select("k.ad_group_id", "s.date", sumExpressions("s")).
		From(searchFactsTable + " s").
		Join("keywords k ON s.keyword_id = k.id").
		Where(squirrel.Eq{"k.ad_group_id": adGroupIDs}).
		GroupBy("k.ad_group_id", "s.date")

	if err := r.accumulateSums(ctx, searchBuilder, startDate, endDate, "s", sums); err != nil {
		return nil, err
	}

	displayBuilder := squirrel.
		Select("ad.ad_group_id", "d.date", sumExpressions("d")).
		From(displayFactsTable + " d").
		Join("ads ad ON d.ad_id = ad.id").
		Where(squirrel.Eq{"ad.ad_group_id": adGroupIDs}).
		GroupBy("ad.ad_group_id", "d.date")

	if err := r.accumulateSums(ctx, displayBuilder, startDate, endDate, "d", sums); err != nil {
		return nil, err
	}

	return sums, nil
}

// SumByCampaignAndDate soma fatos por (campanha, dia), atravessando
// keyword→ad group e anúncio→ad group até a campanha corrente.
func (r *factRepository) SumByCampaignAndDate(ctx context.Context, campaignIDs []string, startDate, endDate time.Time) (map[RollupKey]domain.Metrics, error) {
	if len(campaignIDs) == 0 {
		return map[RollupKey]domain.Metrics{}, nil
	}

	sums := make(map[RollupKey]domain.Metrics)

	searchBuilder := squirrel.
		Select("ag.campaign_id", "s.date", sumExpressions("s")).
		From(searchFactsTable + " s").
		Join("keywords k ON s.keyword_id = k.id").
		Join("ad_groups ag ON k.ad_group_id = ag.id").
		Where(squirrel.Eq{"ag.campaign_id": campaignIDs}).
		GroupBy("ag.campaign_id", "s.date")

	if err := r.accumulateSums(ctx, searchBuilder, startDate, endDate, "s", sums); err != nil {
		return nil, err
	}

	displayBuilder := squirrel.
		Select("ag.campaign_id", "d.date", sumExpressions("d")).
		From(displayFactsTable + " d").
		Join("ads ad ON d.ad_id = ad.id").
		Join("ad_groups ag ON ad.ad_group_id = ag.id").
		Where(squirrel.Eq{"ag.campaign_id": campaignIDs}).
		GroupBy("ag.campaign_id", "d.date")

	if err := r.accumulateSums(ctx, displayBuilder, startDate, endDate, "d", sums); err != nil {
		return nil, err
	}

	return sums, nil
}

func (r *factRepository) accumulateSums(ctx context.Context, builder squirrel.SelectBuilder, startDate, endDate time.Time, factAlias string, sums map[RollupKey]domain.Metrics) error {
	query, args, err := builder.
		Where(squirrel.GtOrEq{factAlias + ".date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{factAlias + ".date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entityID string
		var date time.Time
		m := domain.ZeroMetrics()

		if err := rows.Scan(&entityID, &date, &m.Impressions, &m.Clicks, &m.Cost, &m.Conversions, &m.ConversionValue); err != nil {
			return fmt.Errorf("erro ao escanear soma de fatos: %w", err)
		}

		key := RollupKey{EntityID: entityID, Date: date.Format(time.DateOnly)}
		sums[key] = sums[key].Add(m)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}

func sumExpressions(alias string) string {
	return fmt.Sprintf(
		"COALESCE(SUM(%[1]s.impressions), 0), COALESCE(SUM(%[1]s.clicks), 0), COALESCE(SUM(%[1]s.cost), 0), COALESCE(SUM(%[1]s.conversions), 0), COALESCE(SUM(%[1]s.conversion_value), 0)",
		alias,
	)
}

func factTableAndKey(key domain.FactKey) (string, squirrel.Eq) {
	if key.Kind == domain.LeafKindSearch {
		return searchFactsTable, squirrel.Eq{
			"search_query_id": key.SearchQueryID,
			"keyword_id":      key.KeywordID,
			"ad_id":           key.AdID,
			"date":            key.Date.Format(time.DateOnly),
		}
	}
	return displayFactsTable, squirrel.Eq{
		"ad_id": key.AdID,
		"date":  key.Date.Format(time.DateOnly),
	}
}
