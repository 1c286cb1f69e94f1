// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/admitportal/internal/app/system/passwords"
	"github.com/dalemusser/admitportal/internal/app/system/ratelimit"
	"github.com/dalemusser/admitportal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup applies process-wide settings after the schema is in place and
// before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})
	if err := passwords.Configure(appCfg.BcryptCost); err != nil {
		return err
	}
	ratelimit.TrustProxyHeaders(appCfg.TrustProxyHeaders)

	t := timeouts.Current()
	logger.Info("startup settings applied",
		zap.Duration("timeout_short", t.Short),
		zap.Duration("timeout_medium", t.Medium),
		zap.Duration("timeout_long", t.Long),
		zap.Int("bcrypt_cost", passwords.Cost()),
		zap.Bool("trust_proxy_headers", appCfg.TrustProxyHeaders))
	return nil
}
