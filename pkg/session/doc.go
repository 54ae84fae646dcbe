// Package session keeps the backend bearer token of a signed-in user in an
// encrypted cookie.
//
// The cookie key is derived from SESSION_SECRET with HKDF-SHA256
// (golang.org/x/crypto/hkdf) and the payload is sealed with AES-256-GCM, using
// the cookie name as additional data so a value cannot be replayed under
// another cookie.
//
//	m, err := session.NewManager(cfg.Session)
//	router.Use(session.Middleware(m))
//
//	// after a successful login
//	_, err = m.Save(w, session.Session{Token: token, UserID: user.ID, Role: user.Role})
//
//	// in handlers
//	s, ok := session.FromContext(r.Context())
package session
