// Package account holds the in-memory state of the signed-in user and
// the selected UI language, shared by every screen.
package account

import (
	"context"
	"sync"

	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/store"
)

// Session is the live view of who is signed in. Screens read through
// it so a profile update made on one screen is visible to the rest of
// the stack.
type Session struct {
	mu    sync.Mutex
	user  *store.User
	lang  catalog.Language
	users store.UserRepo
	sess  store.SessionRepo
}

// NewSession creates a session bound to the given repos.
func NewSession(users store.UserRepo, sess store.SessionRepo) *Session {
	return &Session{
		lang:  catalog.LangEN,
		users: users,
		sess:  sess,
	}
}

// Restore loads the persisted current user, if any.
func (s *Session) Restore(ctx context.Context) error {
	u, err := s.sess.Current(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// User returns the signed-in user, or nil.
func (s *Session) User() *store.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SignIn records u as the signed-in user and persists the pointer.
func (s *Session) SignIn(ctx context.Context, u *store.User) error {
	if err := s.sess.SetCurrent(ctx, u.ID); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// SignOut clears the signed-in user and the persisted pointer.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.sess.Clear(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// SaveUser persists an updated profile and makes it the live copy.
func (s *Session) SaveUser(ctx context.Context, u *store.User) error {
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	return nil
}

// Lang returns the active UI language.
func (s *Session) Lang() catalog.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// CycleLang advances to the next UI language and returns it.
func (s *Session) CycleLang() catalog.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range catalog.Languages {
		if l == s.lang {
			s.lang = catalog.Languages[(i+1)%len(catalog.Languages)]
			return s.lang
		}
	}
	s.lang = catalog.LangEN
	return s.lang
}
