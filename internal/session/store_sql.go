package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mushikui/mushikui-quiz/internal/exam"
)

// SQLStore keeps sessions in the sessions table, answers and results as JSON
// blobs. It serves deployments where several gateway processes share one
// database; semantics match the in-memory store.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(categoryID string) (Session, error) {
	sess := Session{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		StartedAt:  time.Now().Unix(),
	}
	_, err := s.db.Exec(`INSERT INTO sessions (id,category_id,answers_json,results_json,started_at)
		VALUES ($1,$2,$3,$4,$5)`,
		sess.ID, sess.CategoryID, "[]", "[]", sess.StartedAt)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) Get(id string) (Session, error) {
	row := s.db.QueryRow(`SELECT id,category_id,answers_json,results_json,started_at FROM sessions WHERE id=$1`, id)
	var sess Session
	var aj, rj string
	if err := row.Scan(&sess.ID, &sess.CategoryID, &aj, &rj, &sess.StartedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(aj), &sess.Answers); err != nil {
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(rj), &sess.Results); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) SaveAnswer(id string, ans exam.UserAnswer) (Session, error) {
	sess, err := s.Get(id)
	if err != nil {
		return Session{}, err
	}
	sess.Answers = upsertAnswer(sess.Answers, ans)
	aj, err := json.Marshal(sess.Answers)
	if err != nil {
		return Session{}, err
	}
	if _, err := s.db.Exec(`UPDATE sessions SET answers_json=$1 WHERE id=$2`, string(aj), id); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) AppendResult(id string, r exam.QuestionResult) (Session, error) {
	sess, err := s.Get(id)
	if err != nil {
		return Session{}, err
	}
	sess.Results = append(sess.Results, r)
	rj, err := json.Marshal(sess.Results)
	if err != nil {
		return Session{}, err
	}
	if _, err := s.db.Exec(`UPDATE sessions SET results_json=$1 WHERE id=$2`, string(rj), id); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) Restart(id string) (Session, error) {
	sess, err := s.Get(id)
	if err != nil {
		return Session{}, err
	}
	sess.Answers = nil
	sess.Results = nil
	sess.StartedAt = time.Now().Unix()
	if _, err := s.db.Exec(`UPDATE sessions SET answers_json='[]', results_json='[]', started_at=$1 WHERE id=$2`,
		sess.StartedAt, id); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *SQLStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id=$1`, id)
	return err
}
