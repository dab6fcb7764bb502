// Package auth implements account registration, credential verification and
// cookie-backed sessions for the QazaqKitap API.
//
// Passwords are stored as bcrypt hashes and never leave the database layer.
// Sessions are server-side (SQLite-backed via scs) and identified by an
// HttpOnly cookie; the Middleware guard rejects any request outside the
// explicit public-path list before a controller runs.
package auth
