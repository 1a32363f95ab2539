// Package services содержит реализации сервисных портов.
package services

import (
	"time"

	"addressbook/internal/contacts/ports/services"
)

// SystemClock читает системное время.
type SystemClock struct{}

var _ services.Clock = SystemClock{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock всегда возвращает один и тот же момент.
type FixedClock struct {
	At time.Time
}

var _ services.Clock = FixedClock{}

func (c FixedClock) Now() time.Time { return c.At }
