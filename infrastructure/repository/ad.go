package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

const adsTable = "ads ad"

type AdRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Ad, error)
	GetByGoogleAdID(ctx context.Context, googleAdID string) (*domain.Ad, error)
	ListByAdGroup(ctx context.Context, adGroupID string) ([]*domain.Ad, error)
	SaveOrUpdate(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
}

type adRepository struct {
	conn *postgres.Connection
}

func NewAdRepository(conn *postgres.Connection) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

const adColumns = "ad.id, ad.google_ad_id, ad.ad_group_id, ad.ad_type, ad.headlines, ad.descriptions, ad.final_url, ad.status"

func (r *adRepository) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	return r.getAd(ctx, squirrel.Eq{"ad.id": id})
}

func (r *adRepository) GetByGoogleAdID(ctx context.Context, googleAdID string) (*domain.Ad, error) {
	return r.getAd(ctx, squirrel.Eq{"ad.google_ad_id": googleAdID})
}

func (r *adRepository) getAd(ctx context.Context, whereClause map[string]interface{}) (*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ad, err := scanAd(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
	}

	return ad, nil
}

func (r *adRepository) ListByAdGroup(ctx context.Context, adGroupID string) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select(adColumns).
		From(adsTable).
		Where(squirrel.Eq{"ad.ad_group_id": adGroupID}).
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

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		var adType, status string
		var headlinesJSON, descriptionsJSON []byte

		if err := rows.Scan(&ad.ID, &ad.GoogleAdID, &ad.AdGroupID, &adType, &headlinesJSON, &descriptionsJSON, &ad.FinalURL, &status); err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}

		ad.AdType = domain.AdType(adType)
		ad.Status = domain.EntityStatus(status)
		if err := unmarshalCreative(headlinesJSON, descriptionsJSON, ad); err != nil {
			return nil, err
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *adRepository) SaveOrUpdate(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if !ad.AdType.Valid() {
		return nil, fmt.Errorf("tipo de anúncio inválido: %s", ad.AdType)
	}
	if !ad.Status.Valid() {
		return nil, fmt.Errorf("status inválido: %s", ad.Status)
	}

	if ad.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}
		ad.ID = id
	}

	var headlinesJSON, descriptionsJSON []byte
	var err error
	if ad.Headlines != nil {
		headlinesJSON, err = json.Marshal(ad.Headlines)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar headlines para JSON: %w", err)
		}
	}
	if ad.Descriptions != nil {
		descriptionsJSON, err = json.Marshal(ad.Descriptions)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar descriptions para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ads").
		Columns("id", "google_ad_id", "ad_group_id", "ad_type", "headlines", "descriptions", "final_url", "status").
		Values(
			ad.ID,
			ad.GoogleAdID,
			ad.AdGroupID,
			string(ad.AdType),
			headlinesJSON,
			descriptionsJSON,
			ad.FinalURL,
			string(ad.Status),
		).
		Suffix(`
			ON CONFLICT (google_ad_id, ad_group_id) DO UPDATE SET
				ad_type = EXCLUDED.ad_type,
				headlines = EXCLUDED.headlines,
				descriptions = EXCLUDED.descriptions,
				final_url = EXCLUDED.final_url,
				status = EXCLUDED.status
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&ad.ID); err != nil {
		return nil, wrapConstraintError(err, "erro ao salvar anúncio")
	}

	return ad, nil
}

func scanAd(row *sql.Row) (*domain.Ad, error) {
	ad := &domain.Ad{}
	var adType, status string
	var headlinesJSON, descriptionsJSON []byte

	err := row.Scan(&ad.ID, &ad.GoogleAdID, &ad.AdGroupID, &adType, &headlinesJSON, &descriptionsJSON, &ad.FinalURL, &status)
	if err != nil {
		return nil, err
	}

	ad.AdType = domain.AdType(adType)
	ad.Status = domain.EntityStatus(status)
	if err := unmarshalCreative(headlinesJSON, descriptionsJSON, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func unmarshalCreative(headlinesJSON, descriptionsJSON []byte, ad *domain.Ad) error {
	if headlinesJSON != nil {
		if err := json.Unmarshal(headlinesJSON, &ad.Headlines); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de headlines: %w", err)
		}
	}
	if descriptionsJSON != nil {
		if err := json.Unmarshal(descriptionsJSON, &ad.Descriptions); err != nil {
			return fmt.Errorf("erro ao deserializar JSON de descriptions: %w", err)
		}
	}
	return nil
}
