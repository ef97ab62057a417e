package session

import (
	"context"
	"time"
)

// fallbackInterval replaces a non-positive refresh interval.
const fallbackInterval = 3 * time.Second

// AutoRefresh pulls the shared list every interval until ctx is done.
// Ticks are skipped while a search term is set or a scan is in progress.
// onUpdate, if not nil, is called after a pull that changed the list.
func (s *Session) AutoRefresh(ctx context.Context, interval time.Duration, onUpdate func()) {
	if interval <= 0 {
		interval = fallbackInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.refreshAllowed() {
				s.logger.Debug(ctx, "refresh skipped")
				continue
			}
			_, changed, err := s.refresh(ctx)
			if err != nil {
				continue
			}
			if changed && onUpdate != nil {
				onUpdate()
			}
		}
	}
}

func (s *Session) refreshAllowed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.scanning && s.view.Search == ""
}
