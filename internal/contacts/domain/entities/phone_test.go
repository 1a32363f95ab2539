package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/contacts/domain/entities"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "ten digits", raw: "0501234567"},
		{name: "all zeros", raw: "0000000000"},
		{name: "too short", raw: "123456789", wantErr: true},
		{name: "too long", raw: "12345678901", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "letter inside", raw: "12345a7890", wantErr: true},
		{name: "plus prefix", raw: "+380501234", wantErr: true},
		{name: "spaces", raw: "050 123 45", wantErr: true},
		{name: "non-ascii digits", raw: "٠١٢٣٤٥٦٧٨٩", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := entities.NewPhone(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrValidation)

				var verr *entities.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "phone", verr.Field)
				assert.Equal(t, tt.raw, verr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, phone.Value())
			assert.Equal(t, tt.raw, phone.String())
		})
	}
}
