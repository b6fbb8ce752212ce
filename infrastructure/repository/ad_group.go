package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

const adGroupsTable = "ad_groups ag"

type AdGroupRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AdGroup, error)
	GetByGoogleAdGroupID(ctx context.Context, campaignID, googleAdGroupID string) (*domain.AdGroup, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]*domain.AdGroup, error)
	ListIDsByCampaigns(ctx context.Context, campaignIDs []string) ([]string, error)
	SaveOrUpdate(ctx context.Context, adGroup *domain.AdGroup) (*domain.AdGroup, error)
}

type adGroupRepository struct {
	conn *postgres.Connection
}

func NewAdGroupRepository(conn *postgres.Connection) AdGroupRepository {
	return &adGroupRepository{
		conn: conn,
	}
}

func (r *adGroupRepository) GetByID(ctx context.Context, id string) (*domain.AdGroup, error) {
	return r.getAdGroup(ctx, squirrel.Eq{"ag.id": id})
}

func (r *adGroupRepository) GetByGoogleAdGroupID(ctx context.Context, campaignID, googleAdGroupID string) (*domain.AdGroup, error) {
	return r.getAdGroup(ctx, squirrel.Eq{
		"ag.campaign_id":       campaignID,
		"ag.google_adgroup_id": googleAdGroupID,
	})
}

func (r *adGroupRepository) getAdGroup(ctx context.Context, whereClause map[string]interface{}) (*domain.AdGroup, error) {
	query, args, err := squirrel.
		Select("ag.id, ag.google_adgroup_id, ag.campaign_id, ag.name, ag.status").
		From(adGroupsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adGroup := &domain.AdGroup{}
	var status string

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&adGroup.ID, &adGroup.GoogleAdGroupID, &adGroup.CampaignID, &adGroup.Name, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ad group: %w", err)
	}

	adGroup.Status = domain.EntityStatus(status)
	return adGroup, nil
}

func (r *adGroupRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*domain.AdGroup, error) {
	query, args, err := squirrel.
		Select("ag.id, ag.google_adgroup_id, ag.campaign_id, ag.name, ag.status").
		From(adGroupsTable).
		Where(squirrel.Eq{"ag.campaign_id": campaignID}).
		OrderBy("ag.name ASC").
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

	adGroups := make([]*domain.AdGroup, 0)
	for rows.Next() {
		adGroup := &domain.AdGroup{}
		var status string
		if err := rows.Scan(&adGroup.ID, &adGroup.GoogleAdGroupID, &adGroup.CampaignID, &adGroup.Name, &status); err != nil {
			return nil, fmt.Errorf("erro ao escanear ad group: %w", err)
		}
		adGroup.Status = domain.EntityStatus(status)
		adGroups = append(adGroups, adGroup)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adGroups, nil
}

func (r *adGroupRepository) ListIDsByCampaigns(ctx context.Context, campaignIDs []string) ([]string, error) {
	if len(campaignIDs) == 0 {
		return []string{}, nil
	}

	query, args, err := squirrel.
		Select("ag.id").
		From(adGroupsTable).
		Where(squirrel.Eq{"ag.campaign_id": campaignIDs}).
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear ID de ad group: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *adGroupRepository) SaveOrUpdate(ctx context.Context, adGroup *domain.AdGroup) (*domain.AdGroup, error) {
	if !adGroup.Status.Valid() {
		return nil, fmt.Errorf("status inválido: %s", adGroup.Status)
	}

	if adGroup.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}
		adGroup.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_groups").
		Columns("id", "google_adgroup_id", "campaign_id", "name", "status").
		Values(adGroup.ID, adGroup.GoogleAdGroupID, adGroup.CampaignID, adGroup.Name, string(adGroup.Status)).
		Suffix(`
			ON CONFLICT (google_adgroup_id, campaign_id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&adGroup.ID); err != nil {
		return nil, wrapConstraintError(err, "erro ao salvar ad group")
	}

	return adGroup, nil
}
