package tui

import (
	"context"

	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/utils"
	"github.com/rs/zerolog"
)

// requestScope tags one backend call with a fresh request ID. The ID is sent
// as the X-Request-ID header and added to every entry the call logs, down to
// the session store.
func requestScope(ctx context.Context, parent *logger.Logger) (context.Context, *logger.Logger) {
	requestID := utils.NewUUIDGenerator().Generate()
	if parent == nil {
		parent = logger.Nop()
	}

	l := parent.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})

	return l.WithContext(utils.WithRequestID(ctx, requestID)), l
}
