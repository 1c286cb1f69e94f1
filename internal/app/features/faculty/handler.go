// internal/app/features/faculty/handler.go
package faculty

import (
	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	facultystore "github.com/dalemusser/admitportal/internal/app/store/faculty"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const entity = "faculty"

// Handler is the feature-level entry point for faculty members.
type Handler struct {
	Faculty *facultystore.Store
	Audit   *auditlog.Logger
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Faculty: facultystore.New(db),
		Audit:   audit,
		ErrLog:  errLog,
		Log:     logger,
	}
}
