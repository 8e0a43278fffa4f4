package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/errormind/ent"
	entnote "github.com/abhisek/errormind/ent/note"
)

// noteRepo implements NoteRepo using the ent client.
type noteRepo struct {
	client *ent.Client
}

func (r *noteRepo) Append(ctx context.Context, n *Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CapturedAt.IsZero() {
		n.CapturedAt = time.Now().UTC()
	}
	if n.Folder == "" {
		n.Folder = "Knowledge Vault"
	}

	_, err := r.client.Note.Create().
		SetID(n.ID).
		SetUserID(n.UserID).
		SetText(n.Text).
		SetFolder(n.Folder).
		SetCapturedAt(n.CapturedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	return nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID string) ([]*Note, error) {
	rows, err := r.client.Note.Query().
		Where(entnote.UserID(userID)).
		Order(ent.Desc(entnote.FieldCapturedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]*Note, len(rows))
	for i, row := range rows {
		notes[i] = &Note{
			ID:         row.ID,
			UserID:     row.UserID,
			Text:       row.Text,
			Folder:     row.Folder,
			CapturedAt: row.CapturedAt,
		}
	}
	return notes, nil
}
