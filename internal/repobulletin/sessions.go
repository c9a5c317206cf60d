package repobulletin

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"repobulletin.shikanime.studio/internal/auth"
	"repobulletin.shikanime.studio/internal/bulletin"
)

// DefaultSessionIdleTTL is used when no idle TTL is configured.
const DefaultSessionIdleTTL = 30 * time.Minute

var (
	ErrSessionNotFound  = errors.New("edit session not found")
	ErrPermissionDenied = errors.New("viewer may not edit this bulletin")
)

type sessionEntry struct {
	session  *bulletin.Session
	viewerID int64
	touched  time.Time
}

type confirmEntry struct {
	status  *bulletin.ConfirmStatus
	touched time.Time
}

// Sessions keeps the open edit sessions of every viewer. The removal
// confirmation of a viewer is shared by all their sessions. It outlives a
// finished session and is forgotten once the viewer has no session left and
// stayed idle for the TTL.
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
	confirms map[int64]*confirmEntry
}

// NewSessions returns an empty registry evicting sessions idle for ttl.
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionIdleTTL
	}
	return &Sessions{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
		confirms: make(map[int64]*confirmEntry),
	}
}

// Open starts an edit session of page on behalf of viewer.
func (r *Sessions) Open(viewer auth.Viewer, page *bulletin.Page, bridge *bulletin.Bridge) *bulletin.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.confirms[viewer.ID]
	if !ok {
		c = &confirmEntry{status: &bulletin.ConfirmStatus{}}
		r.confirms[viewer.ID] = c
	}
	c.touched = r.now()
	s := bulletin.NewSession(page, bridge, c.status)
	r.sessions[s.ID()] = &sessionEntry{session: s, viewerID: viewer.ID, touched: r.now()}
	slog.Debug("edit session opened", "session_id", s.ID(), "viewer_id", viewer.ID, "owner", page.Owner.Login)
	return s
}

// Get returns the session id opened by viewer and marks it as used.
func (r *Sessions) Get(viewer auth.Viewer, id string) (*bulletin.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if e.viewerID != viewer.ID {
		return nil, ErrPermissionDenied
	}
	e.touched = r.now()
	if c, ok := r.confirms[viewer.ID]; ok {
		c.touched = e.touched
	}
	return e.session, nil
}

// Drop forgets a finished session. The viewer's confirmation is kept.
func (r *Sessions) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// DropViewer forgets every session of viewerID along with its confirmation.
func (r *Sessions) DropViewer(viewerID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.sessions {
		if e.viewerID == viewerID {
			delete(r.sessions, id)
		}
	}
	delete(r.confirms, viewerID)
}

// Len returns the number of open sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts the sessions idle for longer than the TTL and returns how many
// were evicted.
func (r *Sessions) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, e := range r.sessions {
		if e.touched.After(cutoff) {
			continue
		}
		delete(r.sessions, id)
		evicted++
	}
	for viewerID, c := range r.confirms {
		if c.touched.After(cutoff) || r.hasSession(viewerID) {
			continue
		}
		delete(r.confirms, viewerID)
	}
	return evicted
}

// hasSession reports whether viewerID has an open session. r.mu must be held.
func (r *Sessions) hasSession(viewerID int64) bool {
	for _, e := range r.sessions {
		if e.viewerID == viewerID {
			return true
		}
	}
	return false
}

// Run sweeps the registry every interval until ctx is done.
func (r *Sessions) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl / 2
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				slog.InfoContext(ctx, "evicted idle edit sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}
