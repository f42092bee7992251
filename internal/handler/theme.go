package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

const themeCookieMaxAge = 365 * 24 * time.Hour

// nextTheme resolves the posted theme. An empty value flips whatever the
// cookie holds, starting from light when there is no cookie yet.
func nextTheme(r *http.Request) (string, bool) {
	switch v := r.FormValue("theme"); v {
	case themeLight, themeDark:
		return v, true
	case "":
		if themeFromRequest(r) == themeDark {
			return themeLight, true
		}
		return themeDark, true
	default:
		return "", false
	}
}

// setTheme handles POST /theme.
func setTheme(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	theme, ok := nextTheme(r)
	if !ok {
		http.Error(w, "unknown theme", http.StatusBadRequest)
		return
	}

	// Readable from JS: the inline script in base.html picks it up before first paint.
	http.SetCookie(w, &http.Cookie{
		Name:     "theme",
		Value:    theme,
		Path:     "/",
		MaxAge:   int(themeCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	payload, _ := json.Marshal(map[string]map[string]string{
		"themeChanged": {"theme": theme},
	})
	w.Header().Set("HX-Trigger", string(payload))
	w.WriteHeader(http.StatusNoContent)
}
