// Package session persists nREPL session ids per server address so repeated
// command invocations share one server-side session. Ids are plain values
// handed to each operation; nothing here is process-global.
package session

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store maps server address to session id in a TOML state file. The file is
// rewritten atomically on every change.
type Store struct {
	path string
}

type fileState struct {
	Sessions map[string]string `toml:"sessions"`
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the state file under the user config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolve config dir: %w", err)
	}
	return filepath.Join(base, "replctl", "sessions.toml"), nil
}

func (s *Store) Get(addr string) (string, bool, error) {
	state, err := s.load()
	if err != nil {
		return "", false, err
	}
	id, ok := state.Sessions[addr]
	return id, ok, nil
}

func (s *Store) Put(addr, id string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	if state.Sessions == nil {
		state.Sessions = make(map[string]string)
	}
	state.Sessions[addr] = id
	return s.save(state)
}

// Delete removes the stored session for addr, reporting whether one existed.
func (s *Store) Delete(addr string) (bool, error) {
	state, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := state.Sessions[addr]; !ok {
		return false, nil
	}
	delete(state.Sessions, addr)
	return true, s.save(state)
}

func (s *Store) load() (fileState, error) {
	var state fileState
	if _, err := toml.DecodeFile(s.path, &state); err != nil {
		if os.IsNotExist(err) {
			return fileState{}, nil
		}
		return fileState{}, fmt.Errorf("session: load %s: %w", s.path, err)
	}
	return state, nil
}

func (s *Store) save(state fileState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("session: create state dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(state); err != nil {
		return fmt.Errorf("session: encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("session: write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: replace state: %w", err)
	}
	return nil
}
