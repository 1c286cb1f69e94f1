// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/filestore"
	"github.com/dalemusser/admitportal/internal/app/system/metrics"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"github.com/dalemusser/admitportal/internal/app/system/tracing"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and back-end dependencies shared by every feature.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Files receives uploaded student documents.
	Files filestore.Store

	LoginLimiter    *ratelimit.LoginLimiter
	Audit           *auditlog.Logger
	Metrics         *metrics.HTTP
	ShutdownTracing tracing.ShutdownFunc
}
