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

const searchQueriesTable = "search_queries sq"

type SearchQueryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SearchQuery, error)
	GetByText(ctx context.Context, queryText string) (*domain.SearchQuery, error)
	// GetOrCreate resolve o texto literal para a linha de dimensão,
	// criando-a se necessário. Queries de busca são a única dimensão que
	// o reconciliador de ingestão cria por conta própria.
	GetOrCreate(ctx context.Context, queryText string) (*domain.SearchQuery, error)
}

type searchQueryRepository struct {
	conn *postgres.Connection
}

func NewSearchQueryRepository(conn *postgres.Connection) SearchQueryRepository {
	return &searchQueryRepository{
		conn: conn,
	}
}

func (r *searchQueryRepository) GetByID(ctx context.Context, id string) (*domain.SearchQuery, error) {
	return r.getSearchQuery(ctx, squirrel.Eq{"sq.id": id})
}

func (r *searchQueryRepository) GetByText(ctx context.Context, queryText string) (*domain.SearchQuery, error) {
	return r.getSearchQuery(ctx, squirrel.Eq{"sq.query_text": queryText})
}

func (r *searchQueryRepository) getSearchQuery(ctx context.Context, whereClause map[string]interface{}) (*domain.SearchQuery, error) {
	query, args, err := squirrel.
		Select("sq.id, sq.query_text").
		From(searchQueriesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	searchQuery := &domain.SearchQuery{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&searchQuery.ID, &searchQuery.QueryText); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear search query: %w", err)
	}

	return searchQuery, nil
}

func (r *searchQueryRepository) GetOrCreate(ctx context.Context, queryText string) (*domain.SearchQuery, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID: %w", err)
	}

	// Upsert sem alteração no conflito: o RETURNING não dispara para
	// linhas existentes com DO NOTHING, então atualizamos o próprio texto
	// (no-op) para sempre receber o id de volta em uma única ida ao banco.
	query, args, err := squirrel.StatementBuilder.
		Insert("search_queries").
		Columns("id", "query_text").
		Values(id, queryText).
		Suffix(`
			ON CONFLICT (query_text) DO UPDATE SET
				query_text = EXCLUDED.query_text
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	searchQuery := &domain.SearchQuery{QueryText: queryText}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&searchQuery.ID); err != nil {
		return nil, fmt.Errorf("erro ao salvar search query: %w", err)
	}

	return searchQuery, nil
}
