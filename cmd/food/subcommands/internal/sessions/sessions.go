// Package sessions builds sessions for tests of commands.
package sessions

import (
	"encoding/json"
	"testing"

	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
)

// SignedIn is a session signed in as u with token.
func SignedIn(t *testing.T, auth session.Authenticator, token string, u users.User) *session.Session {
	t.Helper()

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	store := session.NewMemoryStore()
	store.Set(session.KeyToken, token)
	store.Set(session.KeyUser, string(raw))

	sess := session.New(store, auth)
	if err := sess.Hydrate(); err != nil {
		t.Fatal(err)
	}
	return sess
}

// SignedOut is a session without identity.
func SignedOut(auth session.Authenticator) *session.Session {
	return session.New(session.NewMemoryStore(), auth)
}
