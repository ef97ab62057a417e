package session

import (
	"fmt"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/client/services"
)

// Empty-state messages.
const (
	EmptyList   = "No barcodes scanned yet. Start scanning to add items!"
	EmptyGroup  = "No barcodes in this group."
	EmptySearch = "No barcodes found matching your search."
)

// Screen is the render model of the current view. Exactly one of Groups
// and Items is used: Groups for the overview, Items for a drill-down or a
// search. Item indices refer to the full list.
type Screen struct {
	View      services.ViewState
	Title     string
	Count     int
	Groups    []barcodes.Group
	Items     []barcodes.Item
	Highlight bool
	Empty     string
	Syncing   bool
}

// Screen builds the render model from the current list and view.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	view := s.view
	s.mu.Unlock()

	records := s.store.Records()
	scr := Screen{
		View:    view,
		Count:   len(records),
		Title:   fmt.Sprintf("Scanned Barcodes (%d)", len(records)),
		Syncing: s.sync.State() == services.StateSyncing,
	}
	if view.Group != "" {
		scr.Title = view.Group + " Group"
	}

	switch {
	case view.Search != "":
		scr.Items = barcodes.Search(records, view.Search, view.Group)
		scr.Highlight = true
		if len(scr.Items) == 0 {
			scr.Empty = EmptySearch
		}
	case view.Group != "":
		scr.Items = barcodes.GroupItems(records, view.Group)
		if len(scr.Items) == 0 {
			scr.Empty = EmptyGroup
		}
	default:
		scr.Groups = barcodes.GroupView(records)
		if len(records) == 0 {
			scr.Empty = EmptyList
		}
	}

	return scr
}
