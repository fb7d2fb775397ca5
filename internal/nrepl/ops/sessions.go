package ops

import (
	"errors"

	"github.com/replkit/replctl/internal/nrepl"
)

var ErrNoNewSession = errors.New("ops: clone reply carries no new-session")

// Clone creates a server-side session and returns its id. An empty parent
// clones from the server's root environment.
func Clone(d Doer, parent string) (string, error) {
	args := map[string]string{}
	if parent != "" {
		args["session"] = parent
	}
	resps, err := d.Do(nrepl.NewRequest("clone", args))
	if err != nil {
		return "", err
	}
	id, ok := final(resps).Text("new-session")
	if !ok || id == "" {
		return "", ErrNoNewSession
	}
	return id, nil
}

// CloseSession discards a server-side session.
func CloseSession(d Doer, session string) error {
	_, err := d.Do(nrepl.NewRequest("close", map[string]string{"session": session}))
	return err
}

// LsSessions lists the ids of all live server-side sessions.
func LsSessions(d Doer) ([]string, error) {
	resps, err := d.Do(nrepl.NewRequest("ls-sessions", nil))
	if err != nil {
		return nil, err
	}
	var result struct {
		Sessions []string `mapstructure:"sessions"`
	}
	if err := decodeResult(final(resps), &result); err != nil {
		return nil, err
	}
	return result.Sessions, nil
}
