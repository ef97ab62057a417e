// Package server wires the ScanKeeper server: it selects the blob backend,
// builds the list service and runs the HTTP and gRPC endpoints until a
// shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
	"github.com/dmitrijs2005/scankeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/scankeeper/internal/server/config"
	"github.com/dmitrijs2005/scankeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/scankeeper/internal/server/lists"

	gs "github.com/dmitrijs2005/scankeeper/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger logging.Logger
	lists  *lists.Service
	db     *sql.DB
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	store, db, err := newBlobStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	if c.CacheTTL > 0 {
		store = blobstore.NewCached(store, c.CacheTTL)
	}

	svc := lists.NewService(store, c.KeyScope, logger)

	return &App{config: c, logger: logger, lists: svc, db: db}, nil
}

// newBlobStore opens the configured backend. The returned *sql.DB is
// non-nil only for the postgres backend.
func newBlobStore(ctx context.Context, c *config.Config) (blobstore.Store, *sql.DB, error) {
	switch c.BlobBackend {
	case config.BackendMemory:
		return blobstore.NewMemoryStore(), nil, nil
	case config.BackendS3:
		s, err := blobstore.NewS3Store(ctx, blobstore.S3Options{
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			Bucket:       c.S3Bucket,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case config.BackendPostgres:
		db, err := blobstore.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return blobstore.NewPostgresStore(db), db, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, c.BlobBackend)
	}
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

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.lists)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(app.lists, app.logger.With("module", "http"))
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, router, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both endpoints until ctx is cancelled, a termination signal
// arrives or either listener fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.BlobBackend, "key_scope", app.config.KeyScope)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close failed", "error", err)
		}
	}

	app.logger.Info(ctx, "Stopped")
}
