// Package session configures the scs session manager that carries wizard
// state between requests.
package session

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

// CookieName is the session cookie set on every wizard visitor.
const CookieName = "devguide_session"

// cleanupInterval is how often the store sweeps expired wizard sessions.
const cleanupInterval = 30 * time.Minute

// NewManager returns a session manager whose store lives in db. driver picks
// the scs adapter; anything other than "mysql" or "postgres" uses SQLite.
// secure is false only for local plain-HTTP development.
func NewManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = storeFor(db, driver)
	sm.Lifetime = lifetime
	// Wizard progress survives a browser restart for the whole lifetime.
	sm.Cookie.Persist = true
	sm.Cookie.Name = CookieName
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}

func storeFor(db *sqlx.DB, driver string) scs.Store {
	switch driver {
	case "mysql":
		return mysqlstore.NewWithCleanupInterval(db.DB, cleanupInterval)
	case "postgres":
		return postgresstore.NewWithCleanupInterval(db.DB, cleanupInterval)
	default:
		return sqlite3store.NewWithCleanupInterval(db.DB, cleanupInterval)
	}
}
