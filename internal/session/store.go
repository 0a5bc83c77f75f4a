// Package session holds live quiz sessions: the answers a user has entered
// and the results of questions already scored. Sessions are ephemeral; they
// are discarded on finish or restart and nothing outlives them.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mushikui/mushikui-quiz/internal/exam"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID         string                `json:"id"`
	CategoryID string                `json:"category_id"`
	Answers    []exam.UserAnswer     `json:"answers"`
	Results    []exam.QuestionResult `json:"results"`
	StartedAt  int64                 `json:"started_at"`
}

type Store interface {
	Create(categoryID string) (Session, error)
	Get(id string) (Session, error)
	// SaveAnswer upserts one answer: a later write for the same
	// (question, blank) pair replaces the earlier one.
	SaveAnswer(id string, ans exam.UserAnswer) (Session, error)
	AppendResult(id string, r exam.QuestionResult) (Session, error)
	// Restart keeps the session but clears its answers and results.
	Restart(id string) (Session, error)
	Delete(id string) error
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryStore() Store {
	return &memoryStore{sessions: map[string]Session{}}
}

func (m *memoryStore) Create(categoryID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Session{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		StartedAt:  time.Now().Unix(),
	}
	m.sessions[s.ID] = s
	return s, nil
}

func (m *memoryStore) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) SaveAnswer(id string, ans exam.UserAnswer) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	s.Answers = upsertAnswer(s.Answers, ans)
	m.sessions[id] = s
	return s, nil
}

func (m *memoryStore) AppendResult(id string, r exam.QuestionResult) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	s.Results = append(s.Results, r)
	m.sessions[id] = s
	return s, nil
}

func (m *memoryStore) Restart(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	s.Answers = nil
	s.Results = nil
	s.StartedAt = time.Now().Unix()
	m.sessions[id] = s
	return s, nil
}

func (m *memoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// upsertAnswer enforces the replace-not-append contract for UserAnswer.
func upsertAnswer(answers []exam.UserAnswer, ans exam.UserAnswer) []exam.UserAnswer {
	for i, a := range answers {
		if a.QuestionID == ans.QuestionID && a.BlankID == ans.BlankID {
			answers[i] = ans
			return answers
		}
	}
	return append(answers, ans)
}
