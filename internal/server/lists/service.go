// Package lists implements the shared barcode list on top of a blob store:
// one JSON array per key, replaced wholesale on every write.
package lists

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
	"github.com/dmitrijs2005/scankeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/scankeeper/internal/server/config"
)

// keyPrefix prefixes per-address keys.
const keyPrefix = "barcode-list/"

var emptyList = []byte("[]")

type Service struct {
	store  blobstore.Store
	scope  string
	logger logging.Logger
}

// NewService returns a list service. scope is config.KeyScopeGlobal or
// config.KeyScopeAddress.
func NewService(store blobstore.Store, scope string, logger logging.Logger) *Service {
	return &Service{
		store:  store,
		scope:  scope,
		logger: logger.With("module", "lists"),
	}
}

// Key returns the blob key that holds owner's list. With the global scope
// every owner shares one key.
func (s *Service) Key(owner string) string {
	if s.scope == config.KeyScopeAddress && owner != "" {
		return keyPrefix + owner
	}
	return common.GlobalListKey
}

// Get returns the stored JSON array, or "[]" when nothing is stored.
func (s *Service) Get(ctx context.Context, owner string) ([]byte, error) {
	key := s.Key(owner)

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return emptyList, nil
		}
		s.logger.Error(ctx, "list read failed", "key", key, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if len(data) == 0 {
		return emptyList, nil
	}
	return data, nil
}

// Replace validates body as a barcode list and overwrites the stored one.
// It returns the number of records stored.
func (s *Service) Replace(ctx context.Context, owner string, body []byte) (int, error) {
	records, err := barcodes.DecodeList(body)
	if err != nil {
		return 0, err
	}

	data, err := barcodes.EncodeList(records)
	if err != nil {
		return 0, err
	}

	key := s.Key(owner)
	if err := s.store.Set(ctx, key, data); err != nil {
		s.logger.Error(ctx, "list write failed", "key", key, "error", err)
		return 0, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	s.logger.Debug(ctx, "list replaced", "key", key, "count", len(records))
	return len(records), nil
}

// Clear removes the stored list. Subsequent reads return "[]".
func (s *Service) Clear(ctx context.Context, owner string) error {
	key := s.Key(owner)
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Error(ctx, "list clear failed", "key", key, "error", err)
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	s.logger.Debug(ctx, "list cleared", "key", key)
	return nil
}
