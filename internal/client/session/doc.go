// Package session is the client's application context: the record store,
// the current view, the sync service and the view cache, with the
// operations the UI layer calls. There is no package-level state; the CLI
// creates one Session and passes it around.
//
// Local mutations always win over pulls that were started before them: each
// mutation bumps a generation counter, and Refresh drops a pulled list when
// the counter moved while the pull was in flight.
package session
