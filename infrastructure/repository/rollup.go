package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

const (
	adGroupRollupTable  = "ad_group_daily_stats"
	campaignRollupTable = "campaign_daily_stats"
)

// RollupRepository persiste os agregados materializados por (entidade, dia)
// nos níveis de ad group e campanha. ApplyDelta e ReplaceRange recebem um
// Queryer: o agregador os executa na mesma transação do upsert de fato.
type RollupRepository interface {
	ApplyDelta(ctx context.Context, q postgres.Queryer, level domain.RollupLevel, entityID string, date time.Time, delta domain.Metrics) error
	ReplaceRange(ctx context.Context, q postgres.Queryer, level domain.RollupLevel, entityIDs []string, startDate, endDate time.Time, computed map[RollupKey]domain.Metrics) error

	GetByEntityAndDateRange(ctx context.Context, level domain.RollupLevel, entityID string, startDate, endDate time.Time) ([]*domain.Rollup, error)
	MapByEntitiesAndDateRange(ctx context.Context, level domain.RollupLevel, entityIDs []string, startDate, endDate time.Time) (map[RollupKey]domain.Metrics, error)

	// Visões derivadas: somas diárias sobre os rollups de campanha do
	// escopo, sem linha materializada própria.
	SumByAccountAndDateRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*domain.Rollup, error)
	SumByServiceAndDateRange(ctx context.Context, serviceID string, startDate, endDate time.Time) ([]*domain.Rollup, error)
}

type rollupRepository struct {
	conn *postgres.Connection
}

func NewRollupRepository(conn *postgres.Connection) RollupRepository {
	return &rollupRepository{
		conn: conn,
	}
}

// ApplyDelta aplica uma variação de métricas de forma aditiva. O upsert com
// soma no DO UPDATE toma o lock da linha no Postgres, o que serializa
// escritores concorrentes do mesmo ancestral sem perder incrementos.
func (r *rollupRepository) ApplyDelta(ctx context.Context, q postgres.Queryer, level domain.RollupLevel, entityID string, date time.Time, delta domain.Metrics) error {
	table, entityColumn, err := rollupTableAndColumn(level)
	if err != nil {
		return err
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(table).
		Columns(entityColumn, "date", "impressions", "clicks", "cost", "conversions", "conversion_value").
		Values(entityID, date.Format(time.DateOnly),
			delta.Impressions, delta.Clicks, delta.Cost, delta.Conversions, delta.ConversionValue).
		Suffix(fmt.Sprintf(`ON CONFLICT (%[2]s, date) DO UPDATE SET
			impressions = %[1]s.impressions + EXCLUDED.impressions,
			clicks = %[1]s.clicks + EXCLUDED.clicks,
			cost = %[1]s.cost + EXCLUDED.cost,
			conversions = %[1]s.conversions + EXCLUDED.conversions,
			conversion_value = %[1]s.conversion_value + EXCLUDED.conversion_value,
			updated_at = NOW()`, table, entityColumn)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapConstraintError(err, "erro ao aplicar delta de rollup")
	}

	return nil
}

// ReplaceRange descarta os rollups do escopo e período e grava os valores
// recomputados a partir dos fatos. Usado pela reconstrução manual.
func (r *rollupRepository) ReplaceRange(ctx context.Context, q postgres.Queryer, level domain.RollupLevel, entityIDs []string, startDate, endDate time.Time, computed map[RollupKey]domain.Metrics) error {
	table, entityColumn, err := rollupTableAndColumn(level)
	if err != nil {
		return err
	}
	if len(entityIDs) == 0 {
		return nil
	}

	deleteSQL, deleteArgs, err := squirrel.StatementBuilder.
		Delete(table).
		Where(squirrel.Eq{entityColumn: entityIDs}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		return wrapConstraintError(err, "erro ao limpar rollups")
	}

	if len(computed) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(table).
		Columns(entityColumn, "date", "impressions", "clicks", "cost", "conversions", "conversion_value").
		PlaceholderFormat(squirrel.Dollar)

	for key, m := range computed {
		builder = builder.Values(key.EntityID, key.Date, m.Impressions, m.Clicks, m.Cost, m.Conversions, m.ConversionValue)
	}

	insertSQL, insertArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return wrapConstraintError(err, "erro ao regravar rollups")
	}

	return nil
}

func (r *rollupRepository) GetByEntityAndDateRange(ctx context.Context, level domain.RollupLevel, entityID string, startDate, endDate time.Time) ([]*domain.Rollup, error) {
	table, entityColumn, err := rollupTableAndColumn(level)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select("date", metricColumns).
		From(table).
		Where(squirrel.Eq{entityColumn: entityID}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRollups(ctx, query, args, level, entityID)
}

func (r *rollupRepository) MapByEntitiesAndDateRange(ctx context.Context, level domain.RollupLevel, entityIDs []string, startDate, endDate time.Time) (map[RollupKey]domain.Metrics, error) {
	table, entityColumn, err := rollupTableAndColumn(level)
	if err != nil {
		return nil, err
	}
	if len(entityIDs) == 0 {
		return map[RollupKey]domain.Metrics{}, nil
	}

	query, args, err := squirrel.
		Select(entityColumn, "date", metricColumns).
		From(table).
		Where(squirrel.Eq{entityColumn: entityIDs}).
		Where(squirrel.GtOrEq{"date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"date": endDate.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stored := make(map[RollupKey]domain.Metrics)
	for rows.Next() {
		var entityID string
		var date time.Time
		m := domain.ZeroMetrics()

		if err := rows.Scan(&entityID, &date, &m.Impressions, &m.Clicks, &m.Cost, &m.Conversions, &m.ConversionValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear rollup: %w", err)
		}

		stored[RollupKey{EntityID: entityID, Date: date.Format(time.DateOnly)}] = m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stored, nil
}

func (r *rollupRepository) SumByAccountAndDateRange(ctx context.Context, accountID string, startDate, endDate time.Time) ([]*domain.Rollup, error) {
	query, args, err := squirrel.
		Select("cds.date", sumExpressions("cds")).
		From(campaignRollupTable + " cds").
		Join("campaigns c ON cds.campaign_id = c.id").
		Where(squirrel.Eq{"c.account_id": accountID}).
		Where(squirrel.GtOrEq{"cds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"cds.date": endDate.Format(time.DateOnly)}).
		GroupBy("cds.date").
		OrderBy("cds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRollups(ctx, query, args, domain.RollupLevelAccount, accountID)
}

func (r *rollupRepository) SumByServiceAndDateRange(ctx context.Context, serviceID string, startDate, endDate time.Time) ([]*domain.Rollup, error) {
	query, args, err := squirrel.
		Select("cds.date", sumExpressions("cds")).
		From(campaignRollupTable + " cds").
		Join("campaigns c ON cds.campaign_id = c.id").
		Where(squirrel.Eq{"c.service_id": serviceID}).
		Where(squirrel.GtOrEq{"cds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"cds.date": endDate.Format(time.DateOnly)}).
		GroupBy("cds.date").
		OrderBy("cds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRollups(ctx, query, args, domain.RollupLevelService, serviceID)
}

func (r *rollupRepository) queryRollups(ctx context.Context, query string, args []interface{}, level domain.RollupLevel, entityID string) ([]*domain.Rollup, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rollups := make([]*domain.Rollup, 0)
	for rows.Next() {
		rollup := &domain.Rollup{Level: level, EntityID: entityID, Metrics: domain.ZeroMetrics()}

		err := rows.Scan(
			&rollup.Date,
			&rollup.Metrics.Impressions,
			&rollup.Metrics.Clicks,
			&rollup.Metrics.Cost,
			&rollup.Metrics.Conversions,
			&rollup.Metrics.ConversionValue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear rollup: %w", err)
		}

		rollups = append(rollups, rollup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rollups, nil
}

func rollupTableAndColumn(level domain.RollupLevel) (string, string, error) {
	switch level {
	case domain.RollupLevelAdGroup:
		return adGroupRollupTable, "ad_group_id", nil
	case domain.RollupLevelCampaign:
		return campaignRollupTable, "campaign_id", nil
	}
	return "", "", fmt.Errorf("nível de rollup não materializado: %s", level)
}
