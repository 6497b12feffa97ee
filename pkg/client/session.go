package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// User usuário como devolvido por /auth/login e /auth/me.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Session token e usuário persistidos entre execuções.
type Session struct {
	Token string
	User  *User
}

// SessionStore guarda a sessão. Get devolve false quando não há token ou usuário.
type SessionStore interface {
	Get() (Session, bool, error)
	Set(Session) error
	Clear() error
}

// MemoryStore sessão só em memória.
type MemoryStore struct {
	mu sync.RWMutex
	s  *Session
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Get() (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.s == nil {
		return Session{}, false, nil
	}
	return *m.s, true, nil
}

func (m *MemoryStore) Set(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = &s
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = nil
	return nil
}

const (
	tokenFile = "token"
	userFile  = "user"
)

// FileStore grava dois arquivos no diretório: token (texto) e user (JSON).
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("criar diretório da sessão: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) Get() (Session, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	token, err := os.ReadFile(filepath.Join(f.dir, tokenFile))
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	raw, err := os.ReadFile(filepath.Join(f.dir, userFile))
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return Session{}, false, fmt.Errorf("arquivo user corrompido: %w", err)
	}
	t := strings.TrimSpace(string(token))
	if t == "" {
		return Session{}, false, nil
	}
	return Session{Token: t, User: &u}, true, nil
}

func (f *FileStore) Set(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.WriteFile(filepath.Join(f.dir, tokenFile), []byte(s.Token), 0o600); err != nil {
		return err
	}
	if s.User == nil {
		if err := os.Remove(filepath.Join(f.dir, userFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	raw, err := json.Marshal(s.User)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(f.dir, userFile), raw, 0o600)
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}
