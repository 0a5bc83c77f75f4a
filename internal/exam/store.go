package exam

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/mushikui/mushikui-quiz/internal/content"
)

var (
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	// ErrEmptyCategory means a configured category resolved to zero
	// questions: a content bug or a category-name mismatch. It is the one
	// parsing-stage condition escalated to callers instead of swallowed.
	ErrEmptyCategory = errors.New("category contains no questions")
)

// ReloadPolicy decides when Store re-parses the content directory.
type ReloadPolicy int

const (
	// LoadOnce parses on first use and caches for the process lifetime.
	LoadOnce ReloadPolicy = iota
	// AlwaysReload re-parses on every call; development mode.
	AlwaysReload
)

// Store loads markdown question banks from a content directory and serves
// the parsed subject trees. The reload policy is a constructor argument, not
// ambient state: callers choose caching, the parser has no opinion.
type Store struct {
	dir    string
	policy ReloadPolicy
	packs  []content.SubjectPack

	mu     sync.RWMutex
	cached []Subject
	loaded bool
}

func NewStore(dir string, policy ReloadPolicy, packs []content.SubjectPack) *Store {
	return &Store{dir: dir, policy: policy, packs: packs}
}

// load parses every registered subject. A subject whose markdown file is
// missing or unreadable is logged and skipped; one subject's failure never
// blocks the others.
func (s *Store) load() []Subject {
	subjects := make([]Subject, 0, len(s.packs))
	for _, pack := range s.packs {
		path := filepath.Join(s.dir, pack.Subject.ID+".md")
		doc, err := os.ReadFile(path)
		if err != nil {
			log.Printf("exam: loading %s: %v", path, err)
			continue
		}
		subjects = append(subjects, BuildSubject(string(doc), pack))
	}
	return subjects
}

func (s *Store) subjects() []Subject {
	if s.policy == AlwaysReload {
		return s.load()
	}
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return s.cached
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.cached = s.load()
		s.loaded = true
	}
	return s.cached
}

// Subjects lists the catalog without question data.
func (s *Store) Subjects() []SubjectSummary {
	all := s.subjects()
	out := make([]SubjectSummary, 0, len(all))
	for _, sub := range all {
		out = append(out, SubjectSummary{
			ID:            sub.ID,
			Name:          sub.Name,
			Description:   sub.Description,
			CategoryCount: len(sub.Categories),
		})
	}
	return out
}

func (s *Store) Subject(id string) (Subject, error) {
	for _, sub := range s.subjects() {
		if sub.ID == id {
			return sub, nil
		}
	}
	return Subject{}, ErrSubjectNotFound
}

// Category finds a category by its globally unique id, with questions.
func (s *Store) Category(id string) (Category, error) {
	for _, sub := range s.subjects() {
		for _, c := range sub.Categories {
			if c.ID != id {
				continue
			}
			if len(c.Questions) == 0 {
				return Category{}, ErrEmptyCategory
			}
			return c, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}

// Question resolves a question id within a category.
func (s *Store) Question(categoryID, questionID string) (Question, error) {
	c, err := s.Category(categoryID)
	if err != nil {
		return Question{}, err
	}
	for _, q := range c.Questions {
		if q.ID == questionID {
			return q, nil
		}
	}
	return Question{}, ErrQuestionNotFound
}
