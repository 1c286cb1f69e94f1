// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"path"
	"path/filepath"

	adminsfeature "github.com/dalemusser/admitportal/internal/app/features/admins"
	auditlogfeature "github.com/dalemusser/admitportal/internal/app/features/auditlog"
	campusesfeature "github.com/dalemusser/admitportal/internal/app/features/campuses"
	departmentsfeature "github.com/dalemusser/admitportal/internal/app/features/departments"
	errorsfeature "github.com/dalemusser/admitportal/internal/app/features/errors"
	facultyfeature "github.com/dalemusser/admitportal/internal/app/features/faculty"
	healthfeature "github.com/dalemusser/admitportal/internal/app/features/health"
	programsfeature "github.com/dalemusser/admitportal/internal/app/features/programs"
	studentsfeature "github.com/dalemusser/admitportal/internal/app/features/students"
	universitiesfeature "github.com/dalemusser/admitportal/internal/app/features/universities"
	"github.com/dalemusser/admitportal/internal/app/system/accesslog"
	"github.com/dalemusser/admitportal/internal/app/system/requestid"
	"github.com/dalemusser/admitportal/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed.
//
// The JSON API is mounted under /api. /health, /metrics and, for local
// storage, /uploads/* sit at the root.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	errLog := errorsfeature.NewErrorLogger(logger)
	db := deps.MongoDatabase

	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(accesslog.Recoverer(logger))
	r.Use(accesslog.Middleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded documents are served directly only when they live on disk.
	if appCfg.StorageType == "local" {
		prefix := "/" + path.Clean(appCfg.StorageUploadDir)
		r.Handle(prefix+"/*", fileserver.Handler(prefix, filepath.Join(appCfg.StorageLocalRoot, appCfg.StorageUploadDir)))
	}

	r.Route("/api", func(api chi.Router) {
		studentsHandler := studentsfeature.NewHandler(db, studentsfeature.Options{
			Files:          deps.Files,
			UploadDir:      appCfg.StorageUploadDir,
			MaxUploadBytes: int64(appCfg.MaxUploadMB) << 20,
			Limiter:        deps.LoginLimiter,
			Audit:          deps.Audit,
		}, errLog, logger)
		api.Mount("/students", studentsfeature.Routes(studentsHandler))

		// Campuses, departments, faculty and programs are managed under
		// /universities; their static prefixes take precedence over /{id}.
		uniHandler := universitiesfeature.NewHandler(db, deps.LoginLimiter, deps.Audit, errLog, logger)
		uniRouter := universitiesfeature.Routes(uniHandler)
		uniRouter.Mount("/campuses", campusesfeature.Routes(campusesfeature.NewHandler(db, deps.Audit, errLog, logger)))
		uniRouter.Mount("/departments", departmentsfeature.Routes(departmentsfeature.NewHandler(db, deps.Audit, errLog, logger)))
		uniRouter.Mount("/faculty", facultyfeature.Routes(facultyfeature.NewHandler(db, deps.Audit, errLog, logger)))
		uniRouter.Mount("/programs", programsfeature.Routes(programsfeature.NewHandler(db, deps.Audit, errLog, logger)))
		api.Mount("/universities", uniRouter)

		adminsHandler := adminsfeature.NewHandler(db, deps.LoginLimiter, deps.Audit, errLog, logger)
		adminsRouter := adminsfeature.Routes(adminsHandler)
		adminsRouter.Mount("/audit", auditlogfeature.Routes(auditlogfeature.NewHandler(db, errLog, logger)))
		api.Mount("/admins", adminsRouter)
	})

	return otelhttp.NewHandler(r, "admitportal"), nil
}
