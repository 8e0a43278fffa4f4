package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/errormind/ent"
	"github.com/abhisek/errormind/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email.
// All email comparisons in the store go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *userRepo) Create(ctx context.Context, name, email, password string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email must not be empty")
	}

	exists, err := r.client.User.Query().
		Where(user.Email(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Operator"
	}

	u, err := r.client.User.Create().
		SetID(uuid.NewString()).
		SetName(name).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		SetSolvedTaskIds([]string{}).
		SetFailedTaskIds([]string{}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return entUserToUser(u), nil
}

func (r *userRepo) FindByCredentials(ctx context.Context, email, password string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(NormalizeEmail(email))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))) != nil {
		return nil, ErrNotFound
	}

	return entUserToUser(u), nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) Update(ctx context.Context, u *User) error {
	n, err := r.client.User.Update().
		Where(user.ID(u.ID)).
		SetName(u.Name).
		SetLogical(u.Stats.Logical).
		SetComputational(u.Stats.Computational).
		SetCarelessness(u.Stats.Carelessness).
		SetStrategy(u.Stats.Strategy).
		SetAttention(u.Stats.Attention).
		SetSolvedTaskIds(u.SolvedTaskIDs).
		SetFailedTaskIds(u.FailedTaskIDs).
		SetPlacementCompleted(u.PlacementCompleted).
		SetAssignedLevel(u.AssignedLevel).
		SetAssignedGrade(u.AssignedGrade).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Stats: Stats{
			Logical:       u.Logical,
			Computational: u.Computational,
			Carelessness:  u.Carelessness,
			Strategy:      u.Strategy,
			Attention:     u.Attention,
		},
		SolvedTaskIDs:      u.SolvedTaskIds,
		FailedTaskIDs:      u.FailedTaskIds,
		PlacementCompleted: u.PlacementCompleted,
		AssignedLevel:      u.AssignedLevel,
		AssignedGrade:      u.AssignedGrade,
		CreatedAt:          u.CreatedAt,
	}
}
