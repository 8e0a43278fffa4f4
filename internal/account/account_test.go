package account

import (
	"context"
	"testing"

	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/store"
)

// fakeUserRepo implements store.UserRepo in memory.
type fakeUserRepo struct {
	updated *store.User
}

func (f *fakeUserRepo) Create(ctx context.Context, name, email, password string) (*store.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByCredentials(ctx context.Context, email, password string) (*store.User, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUserRepo) Get(ctx context.Context, id string) (*store.User, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, u *store.User) error {
	f.updated = u
	return nil
}

// fakeSessionRepo implements store.SessionRepo in memory.
type fakeSessionRepo struct {
	current string
	user    *store.User
}

func (f *fakeSessionRepo) SetCurrent(ctx context.Context, userID string) error {
	f.current = userID
	return nil
}
func (f *fakeSessionRepo) Current(ctx context.Context) (*store.User, error) {
	if f.current == "" {
		return nil, nil
	}
	return f.user, nil
}
func (f *fakeSessionRepo) Clear(ctx context.Context) error {
	f.current = ""
	return nil
}

func TestSignInSignOut(t *testing.T) {
	sessRepo := &fakeSessionRepo{}
	s := NewSession(&fakeUserRepo{}, sessRepo)
	ctx := context.Background()

	u := &store.User{ID: "u1", Name: "Ada"}
	if err := s.SignIn(ctx, u); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if s.User() == nil || s.User().ID != "u1" {
		t.Fatal("expected signed-in user")
	}
	if sessRepo.current != "u1" {
		t.Fatal("expected persisted pointer")
	}

	if err := s.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if s.User() != nil {
		t.Fatal("expected no user after sign out")
	}
	if sessRepo.current != "" {
		t.Fatal("expected cleared pointer")
	}
}

func TestRestore(t *testing.T) {
	u := &store.User{ID: "u1"}
	sessRepo := &fakeSessionRepo{current: "u1", user: u}
	s := NewSession(&fakeUserRepo{}, sessRepo)

	if err := s.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if s.User() == nil || s.User().ID != "u1" {
		t.Fatal("expected restored user")
	}
}

func TestSaveUserPropagates(t *testing.T) {
	userRepo := &fakeUserRepo{}
	s := NewSession(userRepo, &fakeSessionRepo{})
	ctx := context.Background()

	u := &store.User{ID: "u1", Stats: store.Stats{Logical: 1}}
	if err := s.SaveUser(ctx, u); err != nil {
		t.Fatalf("save: %v", err)
	}
	if userRepo.updated == nil || userRepo.updated.Stats.Logical != 1 {
		t.Fatal("expected repo update")
	}
	if s.User().Stats.Logical != 1 {
		t.Fatal("expected live copy refreshed")
	}
}

func TestCycleLang(t *testing.T) {
	s := NewSession(&fakeUserRepo{}, &fakeSessionRepo{})

	if s.Lang() != catalog.LangEN {
		t.Fatalf("expected en default, got %s", s.Lang())
	}
	if got := s.CycleLang(); got != catalog.LangRU {
		t.Fatalf("expected ru, got %s", got)
	}
	if got := s.CycleLang(); got != catalog.LangKK {
		t.Fatalf("expected kk, got %s", got)
	}
	if got := s.CycleLang(); got != catalog.LangEN {
		t.Fatalf("expected wrap to en, got %s", got)
	}
}
