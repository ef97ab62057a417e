package client

import (
	"context"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
)

// Client is the transport contract to remote list storage. The whole list
// is exchanged on every call; the last write wins.
type Client interface {
	Load(ctx context.Context) ([]barcodes.Record, error)
	Save(ctx context.Context, records []barcodes.Record) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
