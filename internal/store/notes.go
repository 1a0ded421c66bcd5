package store

import (
	"context"
	"fmt"

	"github.com/kagabo/duka-manager/internal/entity"
)

type noteStore struct {
	*MYSQLStore
}

// ListNotes returns notes newest first.
func (ms *MYSQLStore) ListNotes(ctx context.Context) ([]entity.Note, error) {
	query := `
	SELECT id, title, content, priority, created_at
	FROM note
	ORDER BY created_at DESC, id DESC`

	notes, err := QueryListNamed[entity.Note](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get notes: %w", err)
	}
	return notes, nil
}

func (ms *MYSQLStore) AddNote(ctx context.Context, n *entity.NoteInsert) (int, error) {
	if err := n.Validate(); err != nil {
		return 0, err
	}
	query := `
	INSERT INTO note (title, content, priority, created_at)
	VALUES (:title, :content, :priority, :createdAt)`

	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"title":     n.Title,
		"content":   n.Content,
		"priority":  n.Priority,
		"createdAt": ms.Now(),
	})
	if err != nil {
		return 0, fmt.Errorf("can't insert note: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) DeleteNote(ctx context.Context, id int) error {
	err := ExecNamed(ctx, ms.DB(), `DELETE FROM note WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete note: %w", err)
	}
	return nil
}
