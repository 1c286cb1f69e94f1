// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/admitportal/internal/app/store/audit"
	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/filestore"
	"github.com/dalemusser/admitportal/internal/app/system/indexes"
	"github.com/dalemusser/admitportal/internal/app/system/metrics"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/admitportal/internal/app/system/tracing"
	"github.com/dalemusser/admitportal/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB and builds the other back ends the handlers
// share: the file store, login limiter, audit logger, metrics and tracing.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping()*5)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool", appCfg.MongoMaxPoolSize))

	db := client.Database(appCfg.MongoDatabase)

	files, err := newFileStore(ctx, appCfg)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}
	logger.Info("file storage ready", zap.String("type", appCfg.StorageType))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("register metrics: %w", err)
	}

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     appCfg.TracingEnabled,
		Protocol:    appCfg.TracingProtocol,
		ServiceName: appCfg.TracingServiceName,
	}, logger)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("init tracing: %w", err)
	}

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Files:         files,
		LoginLimiter: ratelimit.NewLoginLimiter(ratelimit.LoginConfig{
			IPLimit:     appCfg.LoginIPLimit,
			IPWindow:    appCfg.LoginIPWindow,
			EmailLimit:  appCfg.LoginEmailLimit,
			EmailWindow: appCfg.LoginEmailWindow,
		}),
		Audit: auditlog.New(audit.New(db), logger, auditlog.Config{
			Auth:  appCfg.AuditLogAuth,
			Admin: appCfg.AuditLogAdmin,
		}),
		Metrics:         m,
		ShutdownTracing: shutdownTracing,
	}, nil
}

func newFileStore(ctx context.Context, appCfg AppConfig) (filestore.Store, error) {
	switch appCfg.StorageType {
	case "minio":
		s, err := filestore.NewMinIO(ctx, filestore.MinIOConfig{
			Endpoint:  appCfg.StorageMinIOEndpoint,
			AccessKey: appCfg.StorageMinIOAccessKey,
			SecretKey: appCfg.StorageMinIOSecretKey,
			Bucket:    appCfg.StorageMinIOBucket,
			UseSSL:    appCfg.StorageMinIOUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio storage: %w", err)
		}
		return s, nil
	default:
		s, err := filestore.NewLocal(appCfg.StorageLocalRoot)
		if err != nil {
			return nil, fmt.Errorf("init local storage: %w", err)
		}
		return s, nil
	}
}

// EnsureSchema creates collection validators and then the indexes.
// Both steps are idempotent.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := validators.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure collection validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	logger.Info("schema ready")
	return nil
}
