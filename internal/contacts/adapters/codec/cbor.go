// Package codec кодирует снимки контактов в бинарные блобы для key-value хранилищ.
package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"addressbook/internal/contacts/domain/entities"
)

const (
	errEncodeRecord = "failed to encode record"
	errDecodeRecord = "failed to decode record"
)

var encMode = func() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// Encode кодирует запись в детерминированный CBOR.
func Encode(record entities.RecordData) ([]byte, error) {
	blob, err := encMode.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", errEncodeRecord, record.Name, err)
	}
	return blob, nil
}

// Decode восстанавливает запись из блоба, сохраненного под ключом key.
// Имя в блобе должно совпадать с ключом.
func Decode(key string, blob []byte) (entities.RecordData, error) {
	var record entities.RecordData
	if err := cbor.Unmarshal(blob, &record); err != nil {
		return entities.RecordData{}, fmt.Errorf("%s %q: %w", errDecodeRecord, key, err)
	}
	if record.Name != key {
		return entities.RecordData{}, fmt.Errorf("%s %q: stored name %q does not match key", errDecodeRecord, key, record.Name)
	}
	return record, nil
}
