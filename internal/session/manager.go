package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName holds the session id.
const CookieName = "tinyai_session"

// Manager ties a browser cookie to a State in a Store.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager returns a manager over store. ttl sets the cookie lifetime (0 = browser session).
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Load returns the session id and state for r, issuing a new cookie when r has no live session.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (string, State, error) {
	if c, err := r.Cookie(CookieName); err == nil {
		if _, perr := uuid.Parse(c.Value); perr == nil {
			st, err := m.store.Load(r.Context(), c.Value)
			if err == nil {
				return c.Value, st, nil
			}
			if !errors.Is(err, ErrNotFound) {
				return "", State{}, err
			}
		}
	}

	id := uuid.NewString()
	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if m.ttl > 0 {
		cookie.MaxAge = int(m.ttl / time.Second)
	}
	http.SetCookie(w, cookie)
	return id, State{}, nil
}

// Save stores st under id.
func (m *Manager) Save(ctx context.Context, id string, st State) error {
	return m.store.Save(ctx, id, st)
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}
