package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/Uilsaun/GitResaHotel/internal/model"
)

const (
	_tokenBytes = 32 // 64 hex chars

	// Lifetime ends with the browser session unless "remember me" was
	// checked; the server still caps an unremembered session at a day.
	DefaultTTL  = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour
)

var ErrNotFound = errors.New("session not found")

// Session maps an opaque token to the authenticated client plus a few cached
// display fields, so the common request path skips a database round trip.
type Session struct {
	Token     string
	ClientID  model.ID
	Remember  bool
	ExpiresAt time.Time

	Nom             string
	Email           string
	Telephone       string
	NombrePersonnes int
}

func (s *Session) IsExpiredAt(t time.Time) bool {
	return t.After(s.ExpiresAt)
}

// Manager is an in-memory session store keyed by token. Expired sessions are
// treated as absent and reaped lazily.
type Manager struct {
	mux      sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create registers a session for the client and returns the opaque token the
// cookie carries.
func (m *Manager) Create(client model.Client, remember bool) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	ttl := DefaultTTL
	if remember {
		ttl = RememberTTL
	}

	sess := &Session{
		Token:     token,
		ClientID:  client.ID,
		Remember:  remember,
		ExpiresAt: m.now().Add(ttl),

		Nom:             client.Nom,
		Email:           client.Email,
		Telephone:       client.Telephone,
		NombrePersonnes: client.NombrePersonnes,
	}

	m.mux.Lock()
	m.sessions[token] = sess
	m.mux.Unlock()

	return sess, nil
}

func (m *Manager) Get(token string) (*Session, error) {
	m.mux.RLock()
	sess, ok := m.sessions[token]
	m.mux.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	if sess.IsExpiredAt(m.now()) {
		m.Destroy(token)
		return nil, ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

// Refresh replaces the cached display fields after a profile update.
func (m *Manager) Refresh(token string, client model.Client) error {
	m.mux.Lock()
	defer m.mux.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return ErrNotFound
	}

	sess.Nom = client.Nom
	sess.Email = client.Email
	sess.Telephone = client.Telephone
	sess.NombrePersonnes = client.NombrePersonnes

	return nil
}

func (m *Manager) Destroy(token string) {
	m.mux.Lock()
	delete(m.sessions, token)
	m.mux.Unlock()
}

// DeleteExpired reaps expired sessions and returns how many were removed.
func (m *Manager) DeleteExpired() int {
	now := m.now()

	m.mux.Lock()
	defer m.mux.Unlock()

	count := 0
	for token, sess := range m.sessions {
		if sess.IsExpiredAt(now) {
			delete(m.sessions, token)
			count++
		}
	}

	return count
}

func generateToken() (string, error) {
	buf := make([]byte, _tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
