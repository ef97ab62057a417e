package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scankeeper/internal/client/repositories/metadata"
)

// Metadata keys of the persisted view.
const (
	KeyActiveTab    = "activeTab"
	KeySearchTerm   = "searchTerm"
	KeyCurrentGroup = "currentGroup"
)

// Tabs of the client UI.
const (
	TabScan = "scan"
	TabList = "list"
)

// ViewState is what the user was looking at.
type ViewState struct {
	Tab    string
	Group  string
	Search string
}

// ViewStateCache keeps the view across restarts. It never stores records.
type ViewStateCache struct {
	repo metadata.Repository
}

func NewViewStateCache(repo metadata.Repository) *ViewStateCache {
	return &ViewStateCache{repo: repo}
}

// Restore reads the cached view. Missing keys fall back to the scan tab
// with no group and no search.
func (c *ViewStateCache) Restore(ctx context.Context) (ViewState, error) {
	vs := ViewState{Tab: TabScan}

	all, err := c.repo.List(ctx)
	if err != nil {
		return vs, fmt.Errorf("restore view: %w", err)
	}

	for key, dst := range map[string]*string{
		KeyActiveTab:    &vs.Tab,
		KeySearchTerm:   &vs.Search,
		KeyCurrentGroup: &vs.Group,
	} {
		if v := all[key]; len(v) > 0 {
			*dst = string(v)
		}
	}

	return vs, nil
}

// Reset forgets the cached view, so the next start opens the scan tab.
func (c *ViewStateCache) Reset(ctx context.Context) error {
	if err := c.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset view: %w", err)
	}
	return nil
}

// SetTab stores the active tab.
func (c *ViewStateCache) SetTab(ctx context.Context, tab string) error {
	return c.repo.Set(ctx, KeyActiveTab, []byte(tab))
}

// SetSearch stores a search term; an empty term removes the key.
func (c *ViewStateCache) SetSearch(ctx context.Context, term string) error {
	return c.setOrDelete(ctx, KeySearchTerm, term)
}

// SetGroup stores the drill-down group; an empty name removes the key.
func (c *ViewStateCache) SetGroup(ctx context.Context, group string) error {
	return c.setOrDelete(ctx, KeyCurrentGroup, group)
}

func (c *ViewStateCache) setOrDelete(ctx context.Context, key, value string) error {
	if value == "" {
		return c.repo.Delete(ctx, key)
	}
	return c.repo.Set(ctx, key, []byte(value))
}
