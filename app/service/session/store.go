package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"medigraph/app/config"

	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
	"github.com/samber/do"
)

var ErrNotFound = errors.New("session not found")

// Store holds the full session map in a single JSON file, re-serialized
// on every mutation. Loading and saving is the explicit persistence
// boundary; nothing else touches the file.
type Store struct {
	mu   sync.RWMutex
	path string
}

func New(di *do.Injector) (*Store, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return NewStore(cfg.Sessions.File)
}

func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create session dir: %w", err)
		}
	}

	return &Store{
		path: path,
	}, nil
}

func (s *Store) load() (map[string]*Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]*Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	sessions := map[string]*Session{}
	if len(data) > 0 {
		if err = json.Unmarshal(data, &sessions); err != nil {
			return nil, fmt.Errorf("failed to parse session file: %w", err)
		}
	}

	return sessions, nil
}

func (s *Store) save(sessions map[string]*Session) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}

	if err = os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return nil, err
	}

	created := &Session{
		ID:        uuid.NewString(),
		Turns:     []Turn{},
		UpdatedAt: time.Now().UTC(),
	}
	sessions[created.ID] = created

	if err = s.save(sessions); err != nil {
		return nil, err
	}

	return created, nil
}

// Append adds a turn to a session. Fills in the turn id and timestamp if
// missing and derives the title from the first user turn.
func (s *Store) Append(sessionID string, turn Turn) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return nil, err
	}

	found, ok := sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	if turn.ID == "" {
		turn.ID = uuid.NewString()
	}
	if turn.Time.IsZero() {
		turn.Time = time.Now().UTC()
	}
	if turn.Kind == "" {
		turn.Kind = KindNormal
	}

	found.Turns = append(found.Turns, turn)
	found.UpdatedAt = turn.Time

	if found.Title == "" && turn.Sender == SenderUser {
		found.Title = deriveTitle(turn.Content)
	}

	if err = s.save(sessions); err != nil {
		return nil, err
	}

	return found, nil
}

func (s *Store) Get(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions, err := s.load()
	if err != nil {
		return nil, err
	}

	found, ok := sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	return found, nil
}

// List returns all sessions, most recently updated first.
func (s *Store) List() ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions, err := s.load()
	if err != nil {
		return nil, err
	}

	result := pie.Values(sessions)
	result = pie.SortUsing(result, func(a, b *Session) bool {
		return a.UpdatedAt.After(b.UpdatedAt)
	})

	return result, nil
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions, err := s.load()
	if err != nil {
		return err
	}

	if _, ok := sessions[sessionID]; !ok {
		return ErrNotFound
	}

	delete(sessions, sessionID)

	return s.save(sessions)
}
