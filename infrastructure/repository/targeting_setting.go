package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

const targetingSettingsTable = "targeting_settings ts"

type TargetingSettingRepository interface {
	ListByAdGroup(ctx context.Context, adGroupID string) ([]*domain.TargetingSetting, error)
	SaveOrUpdate(ctx context.Context, setting *domain.TargetingSetting) (*domain.TargetingSetting, error)
}

type targetingSettingRepository struct {
	conn *postgres.Connection
}

func NewTargetingSettingRepository(conn *postgres.Connection) TargetingSettingRepository {
	return &targetingSettingRepository{
		conn: conn,
	}
}

func (r *targetingSettingRepository) ListByAdGroup(ctx context.Context, adGroupID string) ([]*domain.TargetingSetting, error) {
	query, args, err := squirrel.
		Select("ts.id, ts.ad_group_id, ts.dimension, ts.value, ts.bid_multiplier").
		From(targetingSettingsTable).
		Where(squirrel.Eq{"ts.ad_group_id": adGroupID}).
		OrderBy("ts.dimension ASC, ts.value ASC").
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

	settings := make([]*domain.TargetingSetting, 0)
	for rows.Next() {
		setting := &domain.TargetingSetting{}
		var dimension string
		if err := rows.Scan(&setting.ID, &setting.AdGroupID, &dimension, &setting.Value, &setting.BidMultiplier); err != nil {
			return nil, fmt.Errorf("erro ao escanear targeting setting: %w", err)
		}
		setting.Dimension = domain.TargetingDimension(dimension)
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return settings, nil
}

func (r *targetingSettingRepository) SaveOrUpdate(ctx context.Context, setting *domain.TargetingSetting) (*domain.TargetingSetting, error) {
	if !setting.Dimension.Valid() {
		return nil, fmt.Errorf("dimensão de targeting inválida: %s", setting.Dimension)
	}

	if setting.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}
		setting.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("targeting_settings").
		Columns("id", "ad_group_id", "dimension", "value", "bid_multiplier").
		Values(setting.ID, setting.AdGroupID, string(setting.Dimension), setting.Value, setting.BidMultiplier).
		Suffix(`
			ON CONFLICT (ad_group_id, dimension, value) DO UPDATE SET
				bid_multiplier = EXCLUDED.bid_multiplier
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&setting.ID); err != nil {
		return nil, wrapConstraintError(err, "erro ao salvar targeting setting")
	}

	return setting, nil
}
