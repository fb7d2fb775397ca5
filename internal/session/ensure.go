package session

import (
	"github.com/replkit/replctl/internal/nrepl/ops"
)

// Ensure returns the stored session id for addr, cloning and persisting a
// fresh one when none exists. A stored id is trusted as-is; a stale id shows
// up as an unknown-session error on the next operation, at which point Reset
// plus a new Ensure recovers.
func Ensure(d ops.Doer, store *Store, addr string) (string, error) {
	if id, ok, err := store.Get(addr); err != nil {
		return "", err
	} else if ok {
		return id, nil
	}

	id, err := ops.Clone(d, "")
	if err != nil {
		return "", err
	}
	if err := store.Put(addr, id); err != nil {
		return "", err
	}
	return id, nil
}

// Reset drops the stored session for addr and closes it on the server.
// Server-side close failures are reported but the local entry is removed
// first, so a dead session cannot wedge the store.
func Reset(d ops.Doer, store *Store, addr string) error {
	id, ok, err := store.Get(addr)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if _, err := store.Delete(addr); err != nil {
		return err
	}
	return ops.CloseSession(d, id)
}
