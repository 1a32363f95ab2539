// Package repositories defines repository interfaces for the contacts service.
package repositories

import (
	"context"

	"addressbook/internal/contacts/domain/entities"
)

// ContactRepository хранит снимки контактов между сессиями.
// Load возвращает пустой срез, если сохраненного состояния нет.
// Save полностью заменяет сохраненное состояние, сохраняя порядок записей.
type ContactRepository interface {
	Load(ctx context.Context) ([]entities.RecordData, error)
	Save(ctx context.Context, records []entities.RecordData) error
	Close(ctx context.Context) error
}
