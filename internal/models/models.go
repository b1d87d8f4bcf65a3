package models

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Post is the single content entity. Tags and links travel as
// comma-separated strings; use TagList/LinkList to read them.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Subtitle  *string   `json:"subtitle" db:"subtitle"`
	Content   string    `json:"content" db:"content"`
	Tags      *string   `json:"tags" db:"tags"`
	Links     *string   `json:"links" db:"links"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PostInput carries the five editable fields. Updates replace all of them.
type PostInput struct {
	Title    string  `json:"title" db:"title" validate:"required"`
	Subtitle *string `json:"subtitle" db:"subtitle"`
	Content  string  `json:"content" db:"content" validate:"required"`
	Tags     *string `json:"tags" db:"tags"`
	Links    *string `json:"links" db:"links"`
}

// ErrTitleContentRequired is returned by ValidatePostInput.
var ErrTitleContentRequired = errors.New("title and content are required")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidatePostInput reports ErrTitleContentRequired when title or content is empty.
func ValidatePostInput(in PostInput) error {
	if err := Validator().Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrTitleContentRequired
		}
		return err
	}
	return nil
}

// Input returns the editable fields of p.
func (p Post) Input() PostInput {
	return PostInput{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Content:  p.Content,
		Tags:     p.Tags,
		Links:    p.Links,
	}
}

func (p Post) SubtitleText() string { return deref(p.Subtitle) }

func (p Post) TagsText() string { return deref(p.Tags) }

func (p Post) LinksText() string { return deref(p.Links) }

// TagList returns the trimmed, non-empty tags in order. Duplicates are kept.
func (p Post) TagList() []string {
	return SplitList(deref(p.Tags))
}

func (p Post) LinkList() []string {
	return SplitList(deref(p.Links))
}

// SplitList splits a comma-joined list, trimming items and dropping empties.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// StringPtr returns nil for "" so optional columns stay NULL.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Media describes an uploaded image object.
type Media struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	FileName   string `json:"file_name"`
	Size       int64  `json:"size"`
	MimeType   string `json:"mime_type"`
}

type Stats struct {
	Posts        int       `json:"posts"`
	DatabaseTime time.Time `json:"database_time"`
}
