package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

type accountRepository struct {
	q      querier
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{
		q:      db.DB,
		logger: logger,
	}
}

func (r *accountRepository) WithTx(tx *sql.Tx) AccountRepository {
	return &accountRepository{q: tx, logger: r.logger}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, createAccount,
		account.ID,
		account.UserID,
		account.Email,
		account.Name,
		account.PasswordHash,
	)

	created, err := scanAccount(row.Scan)
	if err != nil {
		if IsUniqueViolation(err) {
			return models.Account{}, fmt.Errorf("%w: email %s", ErrDuplicate, account.Email)
		}
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("email", account.Email).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	row := r.q.QueryRowContext(ctx, findAccountByEmail, email)

	account, err := scanAccount(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("%w: account %s", ErrNotFound, email)
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func (r *accountRepository) GetAccount(ctx context.Context, accountID string) (models.Account, error) {
	row := r.q.QueryRowContext(ctx, getAccount, accountID)

	account, err := scanAccount(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, fmt.Errorf("%w: account %s", ErrNotFound, accountID)
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func scanAccount(scan func(dest ...any) error) (models.Account, error) {
	var account models.Account
	if err := scan(
		&account.ID,
		&account.UserID,
		&account.Email,
		&account.Name,
		&account.PasswordHash,
		&account.CreatedAt,
	); err != nil {
		return models.Account{}, err
	}

	return account, nil
}
