package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/contacts/adapters/codec"
	"addressbook/internal/contacts/domain/entities"
)

func TestEncodeDecode(t *testing.T) {
	record := entities.RecordData{Name: "John", Phones: []string{"0501234567", "0671234567"}, Birthday: "12.06.1990"}

	blob, err := codec.Encode(record)
	require.NoError(t, err)

	again, err := codec.Encode(record)
	require.NoError(t, err)
	assert.Equal(t, blob, again, "encoding must be deterministic")

	decoded, err := codec.Decode("John", blob)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestDecodeErrors(t *testing.T) {
	blob, err := codec.Encode(entities.RecordData{Name: "John"})
	require.NoError(t, err)

	_, err = codec.Decode("Jane", blob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match key")

	_, err = codec.Decode("John", []byte{0xff, 0x00})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode record")
}
