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

const accountsTable = "ad_accounts a"

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AdAccount, error)
	GetByGoogleAccountID(ctx context.Context, googleAccountID string) (*domain.AdAccount, error)
	List(ctx context.Context) ([]*domain.AdAccount, error)
	SaveOrUpdate(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.AdAccount, error) {
	return r.getAccount(ctx, squirrel.Eq{"a.id": id})
}

func (r *accountRepository) GetByGoogleAccountID(ctx context.Context, googleAccountID string) (*domain.AdAccount, error) {
	return r.getAccount(ctx, squirrel.Eq{"a.google_account_id": googleAccountID})
}

func (r *accountRepository) getAccount(ctx context.Context, whereClause map[string]interface{}) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.google_account_id, a.name, a.created_at").
		From(accountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)

	account := &domain.AdAccount{}
	if err := row.Scan(&account.ID, &account.GoogleAccountID, &account.Name, &account.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conta: %w", err)
	}

	return account, nil
}

func (r *accountRepository) List(ctx context.Context) ([]*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select("a.id, a.google_account_id, a.name, a.created_at").
		From(accountsTable).
		OrderBy("a.name ASC").
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

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		account := &domain.AdAccount{}
		if err := rows.Scan(&account.ID, &account.GoogleAccountID, &account.Name, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accounts, nil
}

func (r *accountRepository) SaveOrUpdate(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error) {
	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID: %w", err)
		}
		account.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_accounts").
		Columns("id", "google_account_id", "name").
		Values(account.ID, account.GoogleAccountID, account.Name).
		Suffix(`
			ON CONFLICT (google_account_id) DO UPDATE SET
				name = EXCLUDED.name
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
		return nil, fmt.Errorf("erro ao salvar conta: %w", err)
	}

	return account, nil
}
