package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/contacts/domain/entities"
)

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "regular date", raw: "12.06.1990"},
		{name: "leap day", raw: "29.02.2020"},
		{name: "first year", raw: "01.01.0001"},
		{name: "impossible day", raw: "31.02.2020", wantErr: true},
		{name: "leap day in common year", raw: "29.02.2021", wantErr: true},
		{name: "month out of range", raw: "12.13.1990", wantErr: true},
		{name: "zero day", raw: "00.06.1990", wantErr: true},
		{name: "year zero", raw: "01.01.0000", wantErr: true},
		{name: "dash separators", raw: "12-06-1990", wantErr: true},
		{name: "iso order", raw: "1990.06.12", wantErr: true},
		{name: "month first", raw: "06.25.1990", wantErr: true},
		{name: "single digit day", raw: "1.06.1990", wantErr: true},
		{name: "two digit year", raw: "12.06.90", wantErr: true},
		{name: "trailing text", raw: "12.06.1990x", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := entities.ParseBirthday(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, b.String())
			assert.Equal(t, tt.raw, b.Value())
		})
	}
}

func TestBirthdayNextOccurrence(t *testing.T) {
	ref := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		now      time.Time
		want     time.Time
	}{
		{
			name:     "later this year",
			birthday: "12.06.1990",
			now:      ref,
			want:     time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already passed",
			birthday: "09.06.1990",
			now:      ref,
			want:     time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "today at midnight",
			birthday: "10.06.1990",
			now:      ref,
			want:     ref,
		},
		{
			name:     "today after midnight rolls over",
			birthday: "10.06.1990",
			now:      ref.Add(time.Hour),
			want:     time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap day observed on feb 28",
			birthday: "29.02.2000",
			now:      time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "zoned reference yields a civil date",
			birthday: "01.04.1990",
			now:      time.Date(2024, time.March, 25, 0, 0, 0, 0, time.FixedZone("EET", 2*60*60)),
			want:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap day kept in leap year",
			birthday: "29.02.2000",
			now:      time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC),
			want:     time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := entities.ParseBirthday(tt.birthday)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.NextOccurrence(tt.now))
		})
	}
}
