package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/penca/internal/config"
	"github.com/riskibarqy/penca/internal/domain/league"
	"github.com/riskibarqy/penca/internal/domain/match"
	"github.com/riskibarqy/penca/internal/domain/player"
	"github.com/riskibarqy/penca/internal/domain/team"
	"github.com/riskibarqy/penca/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/penca/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/penca/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/penca/internal/infrastructure/repository/redis"
	"github.com/riskibarqy/penca/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/penca/internal/platform/id"
	"github.com/riskibarqy/penca/internal/platform/logging"
	"github.com/riskibarqy/penca/internal/platform/resilience"
	"github.com/riskibarqy/penca/internal/usecase"
)

type repositories struct {
	leagues league.Repository
	teams   team.Repository
	players player.Repository
	matches match.Repository
	closers []func() error
}

func (r *repositories) close() error {
	var firstErr error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewHTTPServer wires storage, services and the router. The returned cleanup
// releases database and redis connections.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		repos.leagues = cache.NewLeagueRepository(repos.leagues, cfg.CacheTTL)
		repos.teams = cache.NewTeamRepository(repos.teams, cfg.CacheTTL)
		repos.players = cache.NewPlayerRepository(repos.players, cfg.CacheTTL)
		repos.matches = cache.NewMatchRepository(repos.matches, cfg.CacheTTL)
	}

	catalogSvc := usecase.NewCatalogService(repos.leagues, repos.teams, repos.players)
	pencaSvc := usecase.NewPencaService(
		repos.matches,
		repos.teams,
		repos.players,
		idgen.NewUUIDGenerator(),
		logger,
		usecase.PencaServiceConfig{AggregateWorkers: cfg.AggregateWorkers},
	)

	handler := httpapi.NewHandler(catalogSvc, pencaSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.InfoContext(ctx, "http server wired",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"aggregate_workers", cfg.AggregateWorkers,
	)

	return server, repos.close, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (*repositories, error) {
	repos := &repositories{
		leagues: memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:   memory.NewTeamRepository(memory.SeedTeams()),
		players: memory.NewPlayerRepository(memory.SeedPlayers()),
		matches: memory.NewMatchRepository(),
	}

	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		return repos, nil
	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}

		repos.leagues = postgres.NewLeagueRepository(db)
		repos.teams = postgres.NewTeamRepository(db)
		repos.players = postgres.NewPlayerRepository(db)
		repos.matches = postgres.NewMatchRepository(db)
		repos.closers = append(repos.closers, db.Close)
		return repos, nil
	case config.StorageRedis:
		client, err := redis.NewClient(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}

		breaker := resilience.NewCircuitBreaker("redis", cfg.RedisCircuit)
		repos.matches = redis.NewMatchRepository(client, cfg.RedisKeyPrefix, breaker, logger)
		repos.closers = append(repos.closers, client.Close)
		return repos, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
