// Package file хранит контакты в YAML файле.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"addressbook/internal/contacts/domain/entities"
	"addressbook/internal/contacts/ports/repositories"
	"addressbook/pkg/logger"
)

const (
	errReadFile   = "failed to read contacts file"
	errParseFile  = "failed to parse contacts file"
	errEncodeFile = "failed to encode contacts file"
	errWriteFile  = "failed to write contacts file"
)

type document struct {
	Contacts []entities.RecordData `yaml:"contacts"`
}

// ContactRepository реализует repositories.ContactRepository поверх одного YAML файла.
type ContactRepository struct {
	path string
}

var _ repositories.ContactRepository = (*ContactRepository)(nil)

// NewContactRepository создает репозиторий для файла path.
func NewContactRepository(path string) *ContactRepository {
	return &ContactRepository{path: path}
}

// Load читает файл. Отсутствующий или пустой файл означает пустую книгу.
func (r *ContactRepository) Load(ctx context.Context) ([]entities.RecordData, error) {
	log := logger.Log(ctx).With(zap.String("method", "file.ContactRepository.Load"), zap.String("path", r.path))

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug(ctx, "contacts file does not exist, starting empty")
			return nil, nil
		}
		log.Error(ctx, errReadFile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errReadFile, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		log.Error(ctx, errParseFile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errParseFile, err)
	}

	log.Debug(ctx, "contacts file loaded", zap.Int("count", len(doc.Contacts)))
	return doc.Contacts, nil
}

// Save пишет файл целиком через временный файл и rename.
func (r *ContactRepository) Save(ctx context.Context, records []entities.RecordData) error {
	log := logger.Log(ctx).With(zap.String("method", "file.ContactRepository.Save"), zap.String("path", r.path))

	raw, err := yaml.Marshal(document{Contacts: records})
	if err != nil {
		log.Error(ctx, errEncodeFile, zap.Error(err))
		return fmt.Errorf("%s: %w", errEncodeFile, err)
	}

	if err := writeAtomic(r.path, raw); err != nil {
		log.Error(ctx, errWriteFile, zap.Error(err))
		return fmt.Errorf("%s: %w", errWriteFile, err)
	}

	log.Debug(ctx, "contacts file saved", zap.Int("count", len(records)))
	return nil
}

func (r *ContactRepository) Close(context.Context) error { return nil }

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
