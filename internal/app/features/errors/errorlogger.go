// internal/app/features/errors/errorlogger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/admitportal/internal/app/system/apperr"
	"github.com/dalemusser/admitportal/internal/app/system/requestid"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"go.uber.org/zap"
)

// ErrorLogger turns handler errors into {"error": "..."} responses and logs
// them with request context. Causes of Internal errors are logged, never sent.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (el *ErrorLogger) fields(r *http.Request) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestid.FromContext(r.Context())),
	}
}

// Write responds with the status and message for err's kind.
func (el *ErrorLogger) Write(w http.ResponseWriter, r *http.Request, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.Internal {
		el.LogServerError(w, r, e.Msg, e.Err)
		return
	}
	el.Log.Debug("request rejected",
		append(el.fields(r),
			zap.String("kind", e.Kind.String()),
			zap.String("reason", e.Msg))...)
	respond.Error(w, e.Kind.Status(), e.Message())
}

// LogServerError logs err with msg and responds 500 with the generic message.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	el.Log.Error(msg, append(el.fields(r), zap.Error(err))...)
	respond.Error(w, http.StatusInternalServerError, apperr.InternalMessage)
}
