// Package sqlite хранит контакты в локальном файле SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"addressbook/internal/contacts/adapters/codec"
	"addressbook/internal/contacts/domain/entities"
	"addressbook/internal/contacts/ports/repositories"
	"addressbook/pkg/logger"
)

const (
	ErrLoadContacts = "failed to load contacts"
	ErrSaveContacts = "failed to save contacts"
	ErrCloseDB      = "failed to close sqlite database"
)

// ContactRepository реализует repositories.ContactRepository поверх database/sql.
type ContactRepository struct {
	db *sql.DB
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository создает репозиторий для уже мигрированной базы.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Load читает контакты в сохраненном порядке.
func (r *ContactRepository) Load(ctx context.Context) ([]entities.RecordData, error) {
	log := logger.Log(ctx).With(zap.String("method", "sqlite.ContactRepository.Load"))

	rows, err := r.db.QueryContext(ctx, `SELECT name, payload FROM contacts ORDER BY position`)
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
			return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
		}
		record, err := codec.Decode(name, payload)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
	}

	log.Debug(ctx, "contacts loaded", zap.Int("count", len(records)))
	return records, nil
}

// Save заменяет содержимое таблицы в одной транзакции.
func (r *ContactRepository) Save(ctx context.Context, records []entities.RecordData) (err error) {
	log := logger.Log(ctx).With(zap.String("method", "sqlite.ContactRepository.Save"))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSaveContacts, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			log.Error(ctx, ErrSaveContacts, zap.Error(err))
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("%s: %w", ErrSaveContacts, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO contacts (name, position, payload) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSaveContacts, err)
	}
	defer stmt.Close()

	for i, record := range records {
		blob, encErr := codec.Encode(record)
		if encErr != nil {
			err = fmt.Errorf("%s: %w", ErrSaveContacts, encErr)
			return err
		}
		if _, err = stmt.ExecContext(ctx, record.Name, i, blob); err != nil {
			return fmt.Errorf("%s %q: %w", ErrSaveContacts, record.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", ErrSaveContacts, err)
	}

	log.Debug(ctx, "contacts saved", zap.Int("count", len(records)))
	return nil
}

// Close закрывает базу.
func (r *ContactRepository) Close(context.Context) error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrCloseDB, err)
	}
	return nil
}
