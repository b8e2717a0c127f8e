package notes

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	apperrors "github.com/bysecret/noteflux/internal/errors"
)

// Service provides the note and credential operations on top of a Repo.
// Every mutation reads the entire document, changes it in memory and
// writes the entire document back.
type Service struct {
	repo    Repo
	nowTime func() time.Time // injectable for testing
	newID   func() string    // injectable for testing
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithIDGenerator sets the note id generator (primarily for testing)
func WithIDGenerator(idFunc func() string) ServiceOption {
	return func(s *Service) {
		s.newID = idFunc
	}
}

// NewService initializes a Service with its storage dependency. Optional
// configuration can be provided via options (e.g., WithNowTime for testing).
func NewService(repo Repo, options ...ServiceOption) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[NewService] repo is required")
	}

	s := &Service{
		repo:    repo,
		nowTime: time.Now,
		newID:   NewNoteID,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Notes returns all notes in store order.
func (s *Service) Notes() []Note {
	return s.repo.Load().Notes
}

// CreateNote appends a new note with a fresh id and current timestamp.
// The title is trimmed; an empty result falls back to the placeholder.
// Content starts empty.
func (s *Service) CreateNote(title string) Note {
	doc := s.repo.Load()
	note := Note{
		ID:        s.newID(),
		Title:     orPlaceholder(title),
		Content:   "",
		UpdatedAt: s.timestamp(),
	}
	doc.Notes = append(doc.Notes, note)
	s.repo.Save(doc)
	return note
}

// UpdateNote overwrites the first note with a matching id in place.
// Returns ErrNoteNotFound when no note matches; callers that want a
// silent no-op simply ignore it.
func (s *Service) UpdateNote(id, title, content string) error {
	doc := s.repo.Load()
	found := false
	for i := range doc.Notes {
		if doc.Notes[i].ID == id {
			doc.Notes[i].Title = orPlaceholder(title)
			doc.Notes[i].Content = content
			doc.Notes[i].UpdatedAt = s.timestamp()
			found = true
			break
		}
	}
	s.repo.Save(doc)
	if !found {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// DeleteNote removes every note with the given id.
func (s *Service) DeleteNote(id string) {
	doc := s.repo.Load()
	kept := make([]Note, 0, len(doc.Notes))
	for _, n := range doc.Notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	doc.Notes = kept
	s.repo.Save(doc)
}

// CheckSitePassword reports whether pw matches the stored site password.
// The shared secret is compared directly; there is no hashing by design
// of the external contract.
func (s *Service) CheckSitePassword(pw string) bool {
	return s.repo.Load().SitePassword == pw
}

// CheckAdminPassword reports whether pw matches the stored admin password.
func (s *Service) CheckAdminPassword(pw string) bool {
	return s.repo.Load().AdminPassword == pw
}

// SetSitePassword overwrites the site password. Empty submissions are
// silently ignored.
func (s *Service) SetSitePassword(pw string) {
	pw = strings.TrimSpace(pw)
	if pw == "" {
		return
	}
	doc := s.repo.Load()
	doc.SitePassword = pw
	s.repo.Save(doc)
}

// SetAdminPassword overwrites the admin password. Empty submissions are
// silently ignored.
func (s *Service) SetAdminPassword(pw string) {
	pw = strings.TrimSpace(pw)
	if pw == "" {
		return
	}
	doc := s.repo.Load()
	doc.AdminPassword = pw
	s.repo.Save(doc)
}

func (s *Service) timestamp() string {
	return s.nowTime().Format(time.RFC3339)
}

func orPlaceholder(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultNoteTitle
	}
	return title
}
