// Package server initializes and runs the main application server. It opens
// the configured storage backend, wires the account service, handles
// graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/linkhub/internal/cryptox"
	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/accounts"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
	"github.com/dmitrijs2005/linkhub/internal/server/httpapi"
	"github.com/dmitrijs2005/linkhub/internal/server/migrations"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	accountService *accounts.Service
	closers        []io.Closer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repo, closers, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	hasher, err := cryptox.NewHasher(cfg.PasswordHashScheme)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	as := accounts.NewService(repo, hasher, cfg)

	return &App{config: cfg, logger: logger, accountService: as, closers: closers}, nil
}

// openRepository opens the storage adapter named by the config. The returned
// closers are shut down when the app exits; the repository itself is owned
// by the caller and injected into the service, never kept as ambient state.
func openRepository(ctx context.Context, cfg *config.Config) (accounts.Repository, []io.Closer, error) {
	switch cfg.StorageBackend {

	case config.BackendMemory:
		return accounts.NewMemoryRepository(), nil, nil

	case config.BackendPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}
		if err := migrations.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migration error: %w", err)
		}
		return accounts.NewPostgresRepository(db), []io.Closer{db}, nil

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect error: %w", err)
		}
		repo := accounts.NewMongoRepository(client.Database(cfg.MongoDatabase))
		return repo, []io.Closer{&mongoCloser{client: client}}, nil

	case config.BackendBolt:
		repo, err := accounts.OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("bolt open error: %w", err)
		}
		return repo, []io.Closer{repo}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// mongoCloser adapts client.Disconnect to io.Closer.
type mongoCloser struct {
	client *mongo.Client
}

func (c *mongoCloser) Close() error {
	return c.client.Disconnect(context.Background())
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.accountService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Error(ctx, "storage close error", "error", err.Error())
		}
	}
}
