package events

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// newEventID returns a uuid as 32 hex characters, the id format the
// front-end stores and embeds in URLs.
func newEventID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

var ErrNotFound = errors.New("event not found")

// Store keeps every event in a single JSON document. Writes go through a
// temp file followed by an atomic rename so a crash never leaves a partial
// document; the mutex serializes the whole read-modify-write cycle within
// this process. Writers in other processes still race (last one wins).
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.saveUnlocked(map[string]*Event{}); err != nil {
			return nil, fmt.Errorf("init events file: %w", err)
		}
	}
	return s, nil
}

func (s *Store) loadUnlocked() map[string]*Event {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]*Event{}
	}
	var events map[string]*Event
	if err := json.Unmarshal(data, &events); err != nil || events == nil {
		// empty or malformed -> start fresh
		return map[string]*Event{}
	}
	return events
}

func (s *Store) saveUnlocked(events map[string]*Event) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "events-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) List() []EventSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.loadUnlocked()
	out := make([]EventSummary, 0, len(events))
	for id, ev := range events {
		preview := ev.Preview
		if preview == nil {
			preview = map[string]any{}
		}
		out = append(out, EventSummary{ID: id, Basics: ev.Basics, Preview: preview})
	}
	return out
}

func (s *Store) Create(basics Basics, preview map[string]any) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.loadUnlocked()
	ev := &Event{
		ID:         newEventID(),
		Basics:     basics,
		Preview:    preview,
		Components: map[string]any{},
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	events[ev.ID] = ev
	if err := s.saveUnlocked(events); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *Store) Get(id string) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.loadUnlocked()[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ev, nil
}

func (s *Store) UpdateBasics(id string, basics Basics, preview map[string]any) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.loadUnlocked()
	ev, ok := events[id]
	if !ok {
		return nil, ErrNotFound
	}
	ev.Basics = basics
	if preview != nil {
		ev.Preview = preview
	}
	ev.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.saveUnlocked(events); err != nil {
		return nil, err
	}
	return ev, nil
}

// SetComponent stores the latest generation result for one component and
// bumps the update timestamp.
func (s *Store) SetComponent(id, component string, result any) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.loadUnlocked()
	ev, ok := events[id]
	if !ok {
		return nil, ErrNotFound
	}
	if ev.Components == nil {
		ev.Components = map[string]any{}
	}
	ev.Components[component] = result
	ev.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.saveUnlocked(events); err != nil {
		return nil, err
	}
	return ev, nil
}

// Snapshot copies the events document to dir under a timestamped name.
func (s *Store) Snapshot(dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read events file: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure backup dir: %w", err)
	}
	name := filepath.Join(dir, "events-"+time.Now().UTC().Format("20060102-150405")+".json")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return name, nil
}
