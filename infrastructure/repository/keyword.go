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

const keywordsTable = "keywords k"

type KeywordRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Keyword, error)
	GetByGoogleKeywordID(ctx context.Context, googleKeywordID string) (*domain.Keyword, error)
	ListByAdGroup(ctx context.Context, adGroupID string) ([]*domain.Keyword, error)
	SaveOrUpdate(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error)
}

type keywordRepository struct {
	conn *postgres.Connection
}

func NewKeywordRepository(conn *postgres.Connection) KeywordRepository {
	return &keywordRepository{
		conn: conn,
	}
}

func (r *keywordRepository) GetByID(ctx context.Context, id string) (*domain.Keyword, error) {
	return r.getKeyword(ctx, squirrel.Eq{"k.id": id})
}

func (r *keywordRepository) GetByGoogleKeywordID(ctx context.Context, googleKeywordID string) (*domain.Keyword, error) {
	return r.getKeyword(ctx, squirrel.Eq{"k.google_keyword_id": googleKeywordID})
}

func (r *keywordRepository) getKeyword(ctx context.Context, whereClause map[string]interface{}) (*domain.Keyword, error) {
	query, args, err := squirrel.
		Select("k.id, k.google_keyword_id, k.ad_group_id, k.keyword_text, k.match_type, k.status").
		From(keywordsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	keyword := &domain.Keyword{}
	var matchType, status string

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&keyword.ID, &keyword.GoogleKeywordID, &keyword.AdGroupID, &keyword.KeywordText, &matchType, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear keyword: %w", err)
	}

	keyword.MatchType = domain.MatchType(matchType)
	keyword.Status = domain.EntityStatus(status)
	return keyword, nil
}

func (r *keywordRepository) ListByAdGroup(ctx context.Context, adGroupID string) ([]*domain.Keyword, error) {
	query, args, err := squirrel.
		Select("k.id, k.google_keyword_id, k.ad_group_id, k.keyword_text, k.match_type, k.status").
		From(keywordsTable).
		Where(squirrel.Eq{"k.ad_group_id": adGroupID}).
		OrderBy("k.keyword_text ASC").
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

	keywords := make([]*domain.Keyword, 0)
	for rows.Next() {
		keyword := &domain.Keyword{}
		var matchType, status string
		if err := rows.Scan(&keyword.ID, &keyword.GoogleKeywordID, &keyword.AdGroupID, &keyword.KeywordText, &matchType, &status); err != nil {
			return nil, fmt.Errorf("erro ao escanear keyword: %w", err)
		}
		keyword.MatchType = domain.MatchType(matchType)
		keyword.Status = domain.EntityStatus(status)
		keywords = append(keywords, keyword)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keywords, nil
}

func (r *keywordRepository) SaveOrUpdate(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error) {
	if !keyword.MatchType.Valid() {
		return nil, fmt.Errorf("match type inválido: %s", keyword.MatchType)
	}
	if !keyword.Status.Valid() {
		return nil, fmt.Errorf("status inválido: %s", keyword.Status)
	}

	if keyword.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}
		keyword.ID = id
	}

	// O identificador externo pode estar ausente para keywords ainda não
	// sincronizadas; o índice único parcial só cobre valores não nulos.
	query, args, err := squirrel.StatementBuilder.
		Insert("keywords").
		Columns("id", "google_keyword_id", "ad_group_id", "keyword_text", "match_type", "status").
		Values(
			keyword.ID,
			keyword.GoogleKeywordID,
			keyword.AdGroupID,
			keyword.KeywordText,
			string(keyword.MatchType),
			string(keyword.Status),
		).
		Suffix(`
			ON CONFLICT (google_keyword_id, ad_group_id) WHERE google_keyword_id IS NOT NULL DO UPDATE SET
				keyword_text = EXCLUDED.keyword_text,
				match_type = EXCLUDED.match_type,
				status = EXCLUDED.status
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&keyword.ID); err != nil {
		return nil, wrapConstraintError(err, "erro ao salvar keyword")
	}

	return keyword, nil
}
