// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers ports, TLS, log level and request body limits.
// Everything specific to the admission portal lives here and is passed to
// each lifecycle hook.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// File storage configuration
	StorageType      string // "local" or "minio"
	StorageLocalRoot string // Directory that holds the upload dir when local (e.g., "public")
	StorageUploadDir string // Key prefix for uploaded documents (e.g., "uploads")

	// MinIO / S3-compatible configuration (only used if StorageType is "minio")
	StorageMinIOEndpoint  string
	StorageMinIOAccessKey string
	StorageMinIOSecretKey string
	StorageMinIOBucket    string
	StorageMinIOUseSSL    bool

	MaxUploadMB int // Largest profile update body accepted, in MiB

	BcryptCost int

	// Login rate limiting; zero values take the limiter defaults
	LoginIPLimit     int
	LoginIPWindow    time.Duration
	LoginEmailLimit  int
	LoginEmailWindow time.Duration

	// TrustProxyHeaders makes client IPs come from forwarding headers
	TrustProxyHeaders bool

	CORSAllowedOrigins []string

	// Tracing
	TracingEnabled     bool
	TracingProtocol    string // "grpc" or "http/protobuf"
	TracingServiceName string

	// Store call timeouts
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration

	// Audit logging destinations: all, db, log or off
	AuditLogAuth  string
	AuditLogAdmin string
}
