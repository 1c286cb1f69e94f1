// internal/app/features/campuses/handler.go
package campuses

import (
	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	campusstore "github.com/dalemusser/admitportal/internal/app/store/campuses"
	universitystore "github.com/dalemusser/admitportal/internal/app/store/universities"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// entity names campus records in audit events.
const entity = "campus"

// Handler is the feature-level entry point for Campuses.
type Handler struct {
	Campuses     *campusstore.Store
	Universities *universitystore.Store
	Audit        *auditlog.Logger
	ErrLog       *uierrors.ErrorLogger
	Log          *zap.Logger
}

// NewHandler constructs a new Campuses handler bound to a DB and logger.
func NewHandler(db *mongo.Database, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Campuses:     campusstore.New(db),
		Universities: universitystore.New(db),
		Audit:        audit,
		ErrLog:       errLog,
		Log:          logger,
	}
}
