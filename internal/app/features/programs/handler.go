// internal/app/features/programs/handler.go
package programs

import (
	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	programstore "github.com/dalemusser/admitportal/internal/app/store/programs"
	universitystore "github.com/dalemusser/admitportal/internal/app/store/universities"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const entity = "program"

// Handler is the feature-level entry point for Programs.
type Handler struct {
	Programs     *programstore.Store
	Universities *universitystore.Store
	Audit        *auditlog.Logger
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger
}

// NewHandler constructs a new Programs handler bound to a DB and logger.
func NewHandler(db *mongo.Database, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Programs:     programstore.New(db),
		Universities: universitystore.New(db),
		Audit:        audit,
		ErrLog:       errLog,
		Log:          logger,
	}
}
