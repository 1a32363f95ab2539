// Package redis хранит контакты в Redis: hash имя -> CBOR блоб и список с порядком имен.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"addressbook/internal/contacts/adapters/codec"
	"addressbook/internal/contacts/domain/entities"
	"addressbook/internal/contacts/ports/repositories"
	"addressbook/pkg/logger"
)

// DefaultKeyPrefix - префикс ключей по умолчанию.
const DefaultKeyPrefix = "addressbook"

const (
	ErrLoadContacts  = "failed to load contacts from redis"
	ErrSaveContacts  = "failed to save contacts to redis"
	ErrMissingRecord = "contact listed in order has no record"
	ErrCloseClient   = "failed to close redis connection"
)

// ContactRepository реализует repositories.ContactRepository для Redis.
type ContactRepository struct {
	client   *redis.Client
	hashKey  string
	orderKey string
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository создает репозиторий с ключами <prefix>:contacts и <prefix>:order.
func NewContactRepository(client *redis.Client, prefix string) *ContactRepository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &ContactRepository{
		client:   client,
		hashKey:  prefix + ":contacts",
		orderKey: prefix + ":order",
	}
}

// Load читает контакты в сохраненном порядке. Пустые ключи дают пустую книгу.
func (r *ContactRepository) Load(ctx context.Context) ([]entities.RecordData, error) {
	log := logger.Log(ctx).With(zap.String("method", "redis.ContactRepository.Load"))

	names, err := r.client.LRange(ctx, r.orderKey, 0, -1).Result()
	if err != nil {
		log.Error(ctx, ErrLoadContacts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	blobs, err := r.client.HMGet(ctx, r.hashKey, names...).Result()
	if err != nil {
		log.Error(ctx, ErrLoadContacts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
	}

	records := make([]entities.RecordData, 0, len(names))
	for i, name := range names {
		blob, ok := blobs[i].(string)
		if !ok {
			log.Error(ctx, ErrMissingRecord, zap.String("name", name))
			return nil, fmt.Errorf("%s: %s %q", ErrLoadContacts, ErrMissingRecord, name)
		}
		record, err := codec.Decode(name, []byte(blob))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrLoadContacts, err)
		}
		records = append(records, record)
	}

	log.Debug(ctx, "contacts loaded", zap.Int("count", len(records)))
	return records, nil
}

// Save заменяет содержимое обоих ключей в одной транзакции MULTI/EXEC.
func (r *ContactRepository) Save(ctx context.Context, records []entities.RecordData) error {
	log := logger.Log(ctx).With(zap.String("method", "redis.ContactRepository.Save"))

	fields := make([]any, 0, 2*len(records))
	names := make([]any, 0, len(records))
	for _, record := range records {
		blob, err := codec.Encode(record)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrSaveContacts, err)
		}
		fields = append(fields, record.Name, blob)
		names = append(names, record.Name)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.hashKey, r.orderKey)
		if len(records) > 0 {
			pipe.HSet(ctx, r.hashKey, fields...)
			pipe.RPush(ctx, r.orderKey, names...)
		}
		return nil
	})
	if err != nil {
		log.Error(ctx, ErrSaveContacts, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrSaveContacts, err)
	}

	log.Debug(ctx, "contacts saved", zap.Int("count", len(records)))
	return nil
}

// Close закрывает соединение с Redis.
func (r *ContactRepository) Close(context.Context) error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrCloseClient, err)
	}
	return nil
}
