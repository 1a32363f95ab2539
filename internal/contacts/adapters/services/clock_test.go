package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"addressbook/internal/contacts/adapters/services"
)

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := services.SystemClock{}.Now()

	assert.False(t, now.Before(before))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	clock := services.FixedClock{At: at}

	assert.Equal(t, at, clock.Now())
	assert.Equal(t, at, clock.Now())
}
