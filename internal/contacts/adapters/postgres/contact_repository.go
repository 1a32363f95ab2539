// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"addressbook/internal/contacts/adapters/codec"
	"addressbook/internal/contacts/domain/entities"
	"addressbook/internal/contacts/ports/repositories"
	"addressbook/pkg/logger"
)

const (
	ErrLoadContacts  = "failed to load contacts"
	ErrSaveContacts  = "failed to save contacts"
	ErrBeginTx       = "failed to begin transaction"
	ErrCommitTx      = "failed to commit transaction"
	ErrClearContacts = "failed to clear contacts"
	ErrInsertContact = "failed to insert contact"
	ErrScanContact   = "failed to scan contact"
	ErrIterateRows   = "error iterating rows"
)

const LogClosingPool = "closing Postgres connection pool"

const (
	querySelectContacts = `SELECT name, payload FROM contacts ORDER BY position`
	queryDeleteContacts = `DELETE FROM contacts`
	queryInsertContact  = `INSERT INTO contacts (name, position, payload) VALUES ($1, $2, $3)`
)

// PgxPoolInterface - часть pgxpool.Pool, которой пользуется репозиторий.
type PgxPoolInterface interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// ContactRepository реализует repositories.ContactRepository для Postgres.
type ContactRepository struct {
	pool PgxPoolInterface
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository создает новый репозиторий контактов.
func NewContactRepository(pool PgxPoolInterface) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Load читает контакты в сохраненном порядке.
func (r *ContactRepository) Load(ctx context.Context) ([]entities.RecordData, error) {
	log := logger.Log(ctx).With(zap.String("method", "postgres.ContactRepository.Load"))

	rows, err := r.pool.Query(ctx, querySelectContacts)
	if err != nil {
		log.Error(ctx, ErrLoadContacts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
	}
	defer rows.Close()

	var records []entities.RecordData
	for rows.Next() {
		var (
			name    string
			payload []byte
		)
		if err := rows.Scan(&name, &payload); err != nil {
			log.Error(ctx, ErrScanContact, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", ErrScanContact, err)
		}
		record, err := codec.Decode(name, payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, ErrIterateRows, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrIterateRows, err)
	}

	log.Debug(ctx, "contacts loaded", zap.Int("count", len(records)))
	return records, nil
}

// Save заменяет содержимое таблицы в одной транзакции.
func (r *ContactRepository) Save(ctx context.Context, records []entities.RecordData) error {
	log := logger.Log(ctx).With(zap.String("method", "postgres.ContactRepository.Save"))

	blobs := make([][]byte, len(records))
	for i, record := range records {
		blob, err := codec.Encode(record)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrSaveContacts, err)
		}
		blobs[i] = blob
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, ErrBeginTx, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrBeginTx, err)
	}

	if err := replaceAll(ctx, tx, records, blobs); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Warn(ctx, "rollback failed", zap.Error(rbErr))
		}
		log.Error(ctx, ErrSaveContacts, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrSaveContacts, err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, ErrCommitTx, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCommitTx, err)
	}

	log.Debug(ctx, "contacts saved", zap.Int("count", len(records)))
	return nil
}

// Close закрывает пул соединений.
func (r *ContactRepository) Close(ctx context.Context) error {
	logger.Log(ctx).Debug(ctx, LogClosingPool)
	r.pool.Close()
	return nil
}

func replaceAll(ctx context.Context, tx pgx.Tx, records []entities.RecordData, blobs [][]byte) error {
	if _, err := tx.Exec(ctx, queryDeleteContacts); err != nil {
		return fmt.Errorf("%s: %w", ErrClearContacts, err)
	}
	for i, record := range records {
		if _, err := tx.Exec(ctx, queryInsertContact, record.Name, i, blobs[i]); err != nil {
			return fmt.Errorf("%s %q: %w", ErrInsertContact, record.Name, err)
		}
	}
	return nil
}
