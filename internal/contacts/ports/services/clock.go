// Package services defines service interfaces for the contacts service.
package services

import "time"

// Clock отдает текущий момент времени.
type Clock interface {
	Now() time.Time
}
