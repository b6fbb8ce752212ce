package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

const campaignsTable = "campaigns c"

type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	GetByGoogleCampaignID(ctx context.Context, accountID, googleCampaignID string) (*domain.Campaign, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Campaign, error)
	SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

const campaignColumns = "c.id, c.google_campaign_id, c.account_id, c.service_id, c.name, c.campaign_type, c.status, c.budget_amount, c.start_date, c.end_date"

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return r.getCampaign(ctx, squirrel.Eq{"c.id": id})
}

func (r *campaignRepository) GetByGoogleCampaignID(ctx context.Context, accountID, googleCampaignID string) (*domain.Campaign, error) {
	return r.getCampaign(ctx, squirrel.Eq{
		"c.account_id":         accountID,
		"c.google_campaign_id": googleCampaignID,
	})
}

func (r *campaignRepository) getCampaign(ctx context.Context, whereClause map[string]interface{}) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := r.scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.account_id": accountID}).
		OrderBy("c.name ASC").
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaignRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) SaveOrUpdate(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if !campaign.CampaignType.Valid() {
		return nil, fmt.Errorf("tipo de campanha inválido: %s", campaign.CampaignType)
	}
	if !campaign.Status.Valid() {
		return nil, fmt.Errorf("status inválido: %s", campaign.Status)
	}

	if campaign.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}
		campaign.ID = id
	}

	var startDate, endDate interface{}
	if campaign.StartDate != nil {
		startDate = campaign.StartDate.Format(time.DateOnly)
	}
	if campaign.EndDate != nil {
		endDate = campaign.EndDate.Format(time.DateOnly)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "google_campaign_id", "account_id", "service_id", "name", "campaign_type", "status", "budget_amount", "start_date", "end_date").
		Values(
			campaign.ID,
			campaign.GoogleCampaignID,
			campaign.AccountID,
			campaign.ServiceID,
			campaign.Name,
			string(campaign.CampaignType),
			string(campaign.Status),
			campaign.BudgetAmount,
			startDate,
			endDate,
		).
		Suffix(`
			ON CONFLICT (google_campaign_id, account_id) DO UPDATE SET
				service_id = EXCLUDED.service_id,
				name = EXCLUDED.name,
				campaign_type = EXCLUDED.campaign_type,
				status = EXCLUDED.status,
				budget_amount = EXCLUDED.budget_amount,
				start_date = EXCLUDED.start_date,
				end_date = EXCLUDED.end_date
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.ID); err != nil {
		return nil, wrapConstraintError(err, "erro ao salvar campanha")
	}

	return campaign, nil
}

func (r *campaignRepository) scanCampaign(row *sql.Row) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var campaignType, status string
	var startDate, endDate sql.NullTime

	err := row.Scan(
		&campaign.ID,
		&campaign.GoogleCampaignID,
		&campaign.AccountID,
		&campaign.ServiceID,
		&campaign.Name,
		&campaignType,
		&status,
		&campaign.BudgetAmount,
		&startDate,
		&endDate,
	)
	if err != nil {
		return nil, err
	}

	campaign.CampaignType = domain.CampaignType(campaignType)
	campaign.Status = domain.EntityStatus(status)
	if startDate.Valid {
		campaign.StartDate = &startDate.Time
	}
	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}

	return campaign, nil
}

func (r *campaignRepository) scanCampaignRows(rows *sql.Rows) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var campaignType, status string
	var startDate, endDate sql.NullTime

	err := rows.Scan(
		&campaign.ID,
		&campaign.GoogleCampaignID,
		&campaign.AccountID,
		&campaign.ServiceID,
		&campaign.Name,
		&campaignType,
		&status,
		&campaign.BudgetAmount,
		&startDate,
		&endDate,
	)
	if err != nil {
		return nil, err
	}

	campaign.CampaignType = domain.CampaignType(campaignType)
	campaign.Status = domain.EntityStatus(status)
	if startDate.Valid {
		campaign.StartDate = &startDate.Time
	}
	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}

	return campaign, nil
}
