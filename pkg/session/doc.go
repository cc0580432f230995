// Package session persists the state of a simulated portal login.
//
// A Repository stores a single Record (username, password, connection time and
// an active flag) as a JSON document under one storage key. The storage
// backend is injected through the Storage interface: MemoryStorage keeps
// records in process, and the redis package provides a shared backend.
//
// # Usage
//
//	repo, err := session.NewRepository(session.NewMemoryStorage())
//	if err != nil {
//	    return err
//	}
//
//	rec, err := repo.Save(ctx, "alice", "secret") // overwrites any previous record
//	rec, err = repo.Get(ctx)                      // nil, nil when nothing is stored
//	err = repo.Clear(ctx)                         // no-op when already empty
//
// Several independent sessions can share one backend by giving each
// repository its own key with WithKey.
//
// # Error Handling
//
// Get does not try to repair a stored value it cannot decode; it returns an
// error wrapping ErrCorruptedRecord and leaves the value for the caller to
// clear. There is no locking, so concurrent saves race and the last one wins.
//
// Handler exposes Save, Get and Clear over HTTP with JSON bodies.
package session
