// Package editor implements the create/edit form for a single post as a
// small state machine:
//
//	loading -> editing -> submitting -> saved
//	                 ^          |
//	                 +----------+  (save failed)
//
// Create mode starts in editing. A failed initial load ends in load_failed.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"blogapi/internal/models"
)

type State string

const (
	StateLoading    State = "loading"
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSaved      State = "saved"
	StateLoadFailed State = "load_failed"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

var (
	ErrInvalid     = errors.New("title and content are required")
	ErrLoadFailed  = errors.New("failed to load post")
	ErrSaveFailed  = errors.New("failed to save post")
	ErrNotEditable = errors.New("editor is not accepting changes")
)

// Store is the part of the API client the editor needs.
type Store interface {
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
}

// Gate decides whether the editor may be opened at all.
type Gate interface {
	Require() error
}

// Fields are the form values as typed. Tags and links are comma-joined.
type Fields struct {
	Title    string
	Subtitle string
	Content  string
	Tags     string
	Links    string
}

// FieldsFrom fills the form from an existing post.
func FieldsFrom(p *models.Post) Fields {
	return Fields{
		Title:    p.Title,
		Subtitle: p.SubtitleText(),
		Content:  p.Content,
		Tags:     p.TagsText(),
		Links:    p.LinksText(),
	}
}

// Input converts the form into the request body. Title and content are
// trimmed; empty optional fields become null.
func (f Fields) Input() models.PostInput {
	return models.PostInput{
		Title:    strings.TrimSpace(f.Title),
		Subtitle: models.StringPtr(strings.TrimSpace(f.Subtitle)),
		Content:  strings.TrimSpace(f.Content),
		Tags:     models.StringPtr(strings.TrimSpace(f.Tags)),
		Links:    models.StringPtr(strings.TrimSpace(f.Links)),
	}
}

type Editor struct {
	store Store
	mode  Mode
	id    int64

	mu     sync.Mutex
	state  State
	fields Fields
	err    error
	saved  *models.Post
}

// NewCreate opens an empty form.
func NewCreate(store Store, gate Gate) (*Editor, error) {
	if err := checkGate(gate); err != nil {
		return nil, err
	}
	return &Editor{store: store, mode: ModeCreate, state: StateEditing}, nil
}

// Open loads post id into the form. A load failure is not returned as an
// error; the editor ends in StateLoadFailed with Err set.
func Open(ctx context.Context, store Store, gate Gate, id int64) (*Editor, error) {
	if err := checkGate(gate); err != nil {
		return nil, err
	}
	e := &Editor{store: store, mode: ModeEdit, id: id, state: StateLoading}
	e.load(ctx)
	return e, nil
}

func checkGate(gate Gate) error {
	if gate == nil {
		return nil
	}
	return gate.Require()
}

func (e *Editor) load(ctx context.Context) {
	post, err := e.store.GetPost(ctx, e.id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.state = StateLoadFailed
		e.err = fmt.Errorf("%w: %w", ErrLoadFailed, err)
		return
	}
	e.fields = FieldsFrom(post)
	e.state = StateEditing
	e.err = nil
}

// Reload retries the initial load after a failure.
func (e *Editor) Reload(ctx context.Context) error {
	e.mu.Lock()
	if e.mode != ModeEdit || e.state != StateLoadFailed {
		e.mu.Unlock()
		return ErrNotEditable
	}
	e.state = StateLoading
	e.mu.Unlock()

	e.load(ctx)
	return e.Err()
}

func (e *Editor) Mode() Mode { return e.mode }

// ID is the id of the post being edited, or 0 in create mode.
func (e *Editor) ID() int64 { return e.id }

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) Fields() Fields {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields
}

// Edit changes the form. It is only allowed in StateEditing.
func (e *Editor) Edit(change func(*Fields)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateEditing {
		return ErrNotEditable
	}
	change(&e.fields)
	return nil
}

// Err is the last surfaced error, or nil.
func (e *Editor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Saved is the post returned by a successful submit.
func (e *Editor) Saved() *models.Post {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saved
}

// Submit validates the form and, if valid, creates or replaces the post.
// Invalid input fails without a network call. A failed save returns to
// StateEditing with the fields kept.
func (e *Editor) Submit(ctx context.Context) (*models.Post, error) {
	e.mu.Lock()
	if e.state != StateEditing {
		e.mu.Unlock()
		return nil, ErrNotEditable
	}

	in := e.fields.Input()
	if err := models.ValidatePostInput(in); err != nil {
		e.err = ErrInvalid
		e.mu.Unlock()
		return nil, ErrInvalid
	}

	e.state = StateSubmitting
	e.err = nil
	e.mu.Unlock()

	var post *models.Post
	var err error
	if e.mode == ModeEdit {
		post, err = e.store.UpdatePost(ctx, e.id, in)
	} else {
		post, err = e.store.CreatePost(ctx, in)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.state = StateEditing
		e.err = fmt.Errorf("%w: %w", ErrSaveFailed, err)
		return nil, e.err
	}
	e.state = StateSaved
	e.saved = post
	return post, nil
}

// Message is the text shown to the user for an editor error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalid):
		return "Title and content are required."
	case errors.Is(err, ErrLoadFailed):
		return "Failed to load post. Please try again."
	case errors.Is(err, ErrSaveFailed):
		return "Failed to save post. Please try again."
	case errors.Is(err, ErrNotEditable):
		return "The post cannot be changed right now."
	default:
		return err.Error()
	}
}
