package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/client/client"
	"github.com/dmitrijs2005/scankeeper/internal/client/config"
	"github.com/dmitrijs2005/scankeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scankeeper/internal/client/repositories/records"
	"github.com/dmitrijs2005/scankeeper/internal/client/scanner"
	"github.com/dmitrijs2005/scankeeper/internal/client/services"
	"github.com/dmitrijs2005/scankeeper/internal/client/session"
	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/dmitrijs2005/scankeeper/internal/filex"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	session  *session.Session
	storage  client.Client
	db       *sql.DB
	logger   logging.Logger
	feedback *scanner.Feedback
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp wires the local database, the list storage selected by the
// configuration and the session.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)

	dbFile, err := filex.DataFile(c.DatabaseFile)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	storage, err := newStorage(c, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	syncer := services.NewSyncService(storage, logger, c.RequestTimeout)
	cache := services.NewViewStateCache(metadata.NewSQLiteRepository(db))
	sess := session.New(barcodes.NewStore(), syncer, cache, logger)

	return &App{
		config:   c,
		session:  sess,
		storage:  storage,
		db:       db,
		logger:   logger,
		feedback: scanner.NewFeedback(os.Stdout),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func newStorage(c *config.Config, db *sql.DB) (client.Client, error) {
	switch c.StorageMode {
	case config.StorageLocal:
		return records.NewSQLiteRepository(db), nil
	case config.StorageRemote:
	default:
		return nil, fmt.Errorf("%w: storage mode %q", common.ErrUnknownBackend, c.StorageMode)
	}

	switch c.Transport {
	case config.TransportHTTP:
		return client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout), nil
	case config.TransportGRPC:
		return client.NewGRPCClient(c.GRPCEndpointAddr)
	default:
		return nil, fmt.Errorf("%w: transport %q", common.ErrUnknownBackend, c.Transport)
	}
}

// Run restores the session, starts background refresh and blocks in the
// REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to ScanKeeper (type 'help' for commands)")

	a.session.Start(ctx)
	a.render()

	go a.session.AutoRefresh(ctx, a.config.RefreshInterval, a.listUpdated)

	runREPL(ctx, a, a.status, a.reader)
}

// Close waits for pending writes and releases resources.
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.session.Flush(ctx); err != nil {
		a.logger.Warn(ctx, "pending writes not flushed", "error", err)
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Warn(ctx, "storage close failed", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "database close failed", "error", err)
	}
}

// listUpdated tells the user that a background pull changed the list, so
// indices shown earlier may be stale.
func (a *App) listUpdated() {
	fmt.Fprintln(a.out, "\nList updated from shared storage; type 'list' to see the new indices")
}

func (a *App) status() string {
	return fmt.Sprintf("%s %s", a.session.View().Tab, a.session.SyncState())
}
