package health

import (
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	healthPg "github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/marketverse/storefront/internal/config"
	repository "github.com/marketverse/storefront/internal/repositories"
)

// NewHealthHandler registers checks only for the backends actually in use:
// postgres when the probe selected it, redis when a cache address is set.
// On the in-memory fallback the endpoint reports healthy with no checks.
func NewHealthHandler(cfg *config.Config, repos *repository.Repository) (*health.Health, error) {

	var checks []health.Config

	if repos.Backend == repository.BackendPostgres {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: healthPg.New(healthPg.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	if cfg.RedisConnect.Addr != "" {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
