// internal/app/features/departments/handler.go
package departments

import (
	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	departmentstore "github.com/dalemusser/admitportal/internal/app/store/departments"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const entity = "department"

type Handler struct {
	Departments *departmentstore.Store
	Audit       *auditlog.Logger
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Departments: departmentstore.New(db),
		Audit:       audit,
		ErrLog:      errLog,
		Log:         logger,
	}
}

// Routes mounts the department routes (typically at
// "/api/universities/departments").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
