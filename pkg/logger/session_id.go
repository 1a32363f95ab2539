package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionIDKeyType - ключ контекста для хранения session_id.
type sessionIDKeyType struct{}

var sessionIDKey = sessionIDKeyType{}

// NewSessionContext создает новый контекст с идентификатором сессии.
func NewSessionContext(ctx context.Context, sessionID string) context.Context {
	if sessionID == "" {
		sessionID = GenerateSessionID()
	}
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID извлекает идентификатор сессии из контекста.
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}

// GenerateSessionID генерирует новый идентификатор сессии.
func GenerateSessionID() string {
	return uuid.New().String()
}

// WithSessionID создает копию логгера с полем SessionID.
func (l *Logger) WithSessionID(ctx context.Context) *Logger {
	if id, ok := GetSessionID(ctx); ok {
		return l.With(zap.String(SessionID, id))
	}
	return l
}
