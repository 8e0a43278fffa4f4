// Package screens bundles the dependencies shared by the interactive
// screen packages beneath it.
package screens

import (
	"github.com/abhisek/errormind/internal/account"
	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/diagnosis"
	"github.com/abhisek/errormind/internal/store"
)

// Deps carries everything a screen may need. Evaluator is nil when no
// model provider is configured; screens fall back to offline behavior.
type Deps struct {
	Account   *account.Session
	Catalog   *catalog.Catalog
	Users     store.UserRepo
	Notes     store.NoteRepo
	Events    store.EventRepo
	Evaluator *diagnosis.Evaluator
}
