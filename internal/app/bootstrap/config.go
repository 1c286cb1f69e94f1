// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/admitportal/internal/app/system/auditlog"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// appConfigKeys defines the configuration keys for the admission portal.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, storage_type, etc.
//   - Environment variables: ADMITPORTAL_MONGO_URI, ADMITPORTAL_STORAGE_TYPE, etc.
//   - Command-line flags: --mongo_uri, --storage_type, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "admissionPortal", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// File storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local' or 'minio'"},
	{Name: "storage_local_root", Default: "public", Desc: "Directory holding uploaded files when storage is local"},
	{Name: "storage_upload_dir", Default: "uploads", Desc: "Key prefix for uploaded documents"},

	// MinIO configuration
	{Name: "storage_minio_endpoint", Default: "", Desc: "MinIO/S3 endpoint (host:port)"},
	{Name: "storage_minio_access_key", Default: "", Desc: "MinIO access key"},
	{Name: "storage_minio_secret_key", Default: "", Desc: "MinIO secret key"},
	{Name: "storage_minio_bucket", Default: "", Desc: "MinIO bucket name"},
	{Name: "storage_minio_use_ssl", Default: false, Desc: "Use TLS for the MinIO endpoint"},

	{Name: "max_upload_mb", Default: 20, Desc: "Largest profile update request body, in MiB"},
	{Name: "bcrypt_cost", Default: 12, Desc: "bcrypt cost for password hashes"},

	// Login rate limiting
	{Name: "login_ip_limit", Default: 10, Desc: "Login attempts allowed per client IP per window"},
	{Name: "login_ip_window", Default: "1m", Desc: "Window for the per-IP login limit"},
	{Name: "login_email_limit", Default: 5, Desc: "Login attempts allowed per email per window"},
	{Name: "login_email_window", Default: "5m", Desc: "Window for the per-email login limit"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Read the client IP from X-Forwarded-For/X-Real-IP (enable only behind a proxy)"},

	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated list of allowed CORS origins"},

	// Tracing
	{Name: "tracing_enabled", Default: false, Desc: "Export OpenTelemetry traces"},
	{Name: "tracing_protocol", Default: "grpc", Desc: "OTLP protocol: 'grpc' or 'http/protobuf'"},
	{Name: "tracing_service_name", Default: "admitportal", Desc: "service.name reported with traces"},

	// Store call timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document reads"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for writes and list reads"},
	{Name: "timeout_long", Default: "60s", Desc: "Timeout for uploads and aggregations"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// ADMITPORTAL_* environment variables and flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ADMITPORTAL", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		StorageType:      strings.ToLower(strings.TrimSpace(appValues.String("storage_type"))),
		StorageLocalRoot: appValues.String("storage_local_root"),
		StorageUploadDir: appValues.String("storage_upload_dir"),

		StorageMinIOEndpoint:  appValues.String("storage_minio_endpoint"),
		StorageMinIOAccessKey: appValues.String("storage_minio_access_key"),
		StorageMinIOSecretKey: appValues.String("storage_minio_secret_key"),
		StorageMinIOBucket:    appValues.String("storage_minio_bucket"),
		StorageMinIOUseSSL:    appValues.Bool("storage_minio_use_ssl"),

		MaxUploadMB: appValues.Int("max_upload_mb"),
		BcryptCost:  appValues.Int("bcrypt_cost"),

		LoginIPLimit:      appValues.Int("login_ip_limit"),
		LoginIPWindow:     appValues.Duration("login_ip_window", time.Minute),
		LoginEmailLimit:   appValues.Int("login_email_limit"),
		LoginEmailWindow:  appValues.Duration("login_email_window", 5*time.Minute),
		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),

		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),

		TracingEnabled:     appValues.Bool("tracing_enabled"),
		TracingProtocol:    appValues.String("tracing_protocol"),
		TracingServiceName: appValues.String("tracing_service_name"),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),

		AuditLogAuth:  appValues.String("audit_log_auth"),
		AuditLogAdmin: appValues.String("audit_log_admin"),
	}

	return coreCfg, appCfg, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Settings are checked here so a bad deployment fails before connecting.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}

	switch appCfg.StorageType {
	case "local":
		if strings.TrimSpace(appCfg.StorageLocalRoot) == "" {
			return fmt.Errorf("storage_local_root is required when storage_type is 'local'")
		}
	case "minio":
		var missing []string
		for name, v := range map[string]string{
			"storage_minio_endpoint":   appCfg.StorageMinIOEndpoint,
			"storage_minio_access_key": appCfg.StorageMinIOAccessKey,
			"storage_minio_secret_key": appCfg.StorageMinIOSecretKey,
			"storage_minio_bucket":     appCfg.StorageMinIOBucket,
		} {
			if strings.TrimSpace(v) == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return fmt.Errorf("storage_type 'minio' requires %s", strings.Join(missing, ", "))
		}
	default:
		return fmt.Errorf("storage_type must be 'local' or 'minio', got %q", appCfg.StorageType)
	}

	if appCfg.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", appCfg.MaxUploadMB)
	}
	if appCfg.BcryptCost < bcrypt.MinCost || appCfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, appCfg.BcryptCost)
	}

	for key, mode := range map[string]string{
		"audit_log_auth":  appCfg.AuditLogAuth,
		"audit_log_admin": appCfg.AuditLogAdmin,
	} {
		if !auditlog.ValidMode(mode) {
			return fmt.Errorf("%s must be one of all, db, log, off; got %q", key, mode)
		}
	}

	return nil
}
