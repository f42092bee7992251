package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/devguide/internal/llm"
	"github.com/joestump/devguide/internal/phase"
	"github.com/joestump/devguide/internal/project"
	"github.com/joestump/devguide/internal/store"
	"github.com/joestump/devguide/internal/testutil"
	"github.com/joestump/devguide/internal/wizard"
)

type fakeCompleter struct {
	out  string
	err  error
	reqs []llm.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.reqs = append(f.reqs, req)
	return f.out, f.err
}

// wizardTestEnv drives the full router and carries the session cookie from
// one request to the next, like a browser would.
type wizardTestEnv struct {
	h       http.Handler
	cookies map[string]*http.Cookie
}

func newWizardTestEnv(t *testing.T, ai llm.Completer) *wizardTestEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	logger := log.New(io.Discard)

	h := NewRouter(Deps{
		SessionManager: scs.New(),
		Wizard:         wizard.NewService(store.NewSnapshotStore(db), logger),
		Completer:      ai,
		Logger:         logger,
	})
	return &wizardTestEnv{h: h, cookies: map[string]*http.Cookie{}}
}

func (e *wizardTestEnv) do(t *testing.T, method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.h.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		e.cookies[c.Name] = c
	}
	return w
}

func (e *wizardTestEnv) htmx(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, method, path, form, true)
}

func (e *wizardTestEnv) page(t *testing.T, path string) string {
	t.Helper()
	w := e.do(t, http.MethodGet, path, nil, false)
	require.Equal(t, http.StatusOK, w.Code, "GET %s: body %q", path, w.Body.String())
	return w.Body.String()
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body %q", w.Body.String())
}

func TestIndex_RedirectsToCurrentStep(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.do(t, http.MethodGet, "/", nil, false)
	wantStatus(t, w, http.StatusFound)
	assert.Equal(t, "/wizard/type", w.Header().Get("Location"))

	w = e.do(t, http.MethodPost, "/wizard/step/details", url.Values{}, false)
	wantStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/wizard/details", w.Header().Get("Location"))

	w = e.do(t, http.MethodGet, "/", nil, false)
	assert.Equal(t, "/wizard/details", w.Header().Get("Location"), "Location after GoTo")
}

func TestGoTo_HTMXUsesHXRedirect(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/step/prompts", url.Values{})
	wantStatus(t, w, http.StatusOK)
	assert.Equal(t, "/wizard/prompts", w.Header().Get("HX-Redirect"))
}

func TestGoTo_UnknownStep(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.do(t, http.MethodPost, "/wizard/step/nope", url.Values{}, false)
	wantStatus(t, w, http.StatusNotFound)
}

func TestTypeStep_ShowsAllTypes(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	body := e.page(t, "/wizard/type")
	for _, label := range []string{"Static Website", "Full Stack Application", "Backend Service", "Mobile Application"} {
		assert.Contains(t, body, label)
	}
}

func TestSelectType_SeedsDefaults(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.htmx(t, http.MethodPost, "/wizard/type", url.Values{"type": {"fullstack"}})
	wantStatus(t, w, http.StatusOK)
	require.Contains(t, w.Body.String(), `id="type-panel"`)
	assert.Contains(t, w.Body.String(), "Database included", "fullstack should include a database")

	body := e.page(t, "/wizard/details")
	for _, want := range []string{`value="User Authentication"`, `value="CRUD Operations"`, `value="Next.js"`, `value="Prisma"`} {
		assert.Contains(t, body, want)
	}
	assert.NotContains(t, body, `value="Responsive Design"`, "static defaults should not survive the switch to fullstack")
}

func TestSelectType_Unknown(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/type", url.Values{"type": {"desktop"}})
	wantStatus(t, w, http.StatusBadRequest)
}

func TestSelectType_SwitchBackRestoresEdits(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/presets/features", url.Values{"name": {"Analytics Integration"}}), http.StatusOK)

	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/type", url.Values{"type": {"backend"}}), http.StatusOK)
	require.NotContains(t, e.page(t, "/wizard/details"), `value="Analytics Integration"`, "static feature leaked into backend project")

	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/type", url.Values{"type": {"static"}}), http.StatusOK)
	assert.Contains(t, e.page(t, "/wizard/details"), `value="Analytics Integration"`, "static edits were not restored")
}

func TestConfigure_UnavailableToggle(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/config", url.Values{"toggle": {"backend"}, "value": {"true"}})
	wantStatus(t, w, http.StatusBadRequest)
	assert.Contains(t, w.Body.String(), wizard.ErrToggleUnavailable.Error())
}

func TestConfigure_DatabaseNeedsBackend(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/type", url.Values{"type": {"mobile"}}), http.StatusOK)

	// Switching the backend off clears the database as well.
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/config", url.Values{"toggle": {"backend"}}), http.StatusOK)

	w := e.htmx(t, http.MethodPost, "/wizard/config", url.Values{"toggle": {"database"}, "value": {"true"}})
	wantStatus(t, w, http.StatusBadRequest)

	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/config", url.Values{"toggle": {"backend"}, "value": {"true"}}), http.StatusOK)
	w = e.htmx(t, http.MethodPost, "/wizard/config", url.Values{"toggle": {"database"}, "value": {"true"}})
	wantStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Database included")
}

func TestConfigure_UnknownToggle(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/config", url.Values{"toggle": {"cache"}})
	wantStatus(t, w, http.StatusBadRequest)
}

func TestSaveDetails(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/details", url.Values{"name": {"Linkshelf"}, "description": {"Bookmarks\r\nfor teams"}})
	wantStatus(t, w, http.StatusNoContent)

	body := e.page(t, "/wizard/details")
	assert.Contains(t, body, `value="Linkshelf"`)
	assert.Contains(t, body, "Bookmarks\nfor teams", "description stored with normalized newlines")
}

func TestItems_Lifecycle(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.htmx(t, http.MethodPost, "/wizard/items/features", nil)
	wantStatus(t, w, http.StatusOK)
	require.Contains(t, w.Body.String(), `id="collection-features"`)

	// Static starts with two default features, so the new row is index 2.
	w = e.htmx(t, http.MethodPut, "/wizard/items/features/2", url.Values{"value": {"Search"}})
	wantStatus(t, w, http.StatusNoContent)
	require.Contains(t, e.page(t, "/wizard/details"), `value="Search"`)

	w = e.htmx(t, http.MethodDelete, "/wizard/items/features/2", nil)
	wantStatus(t, w, http.StatusOK)
	assert.NotContains(t, w.Body.String(), `value="Search"`)

	wantStatus(t, e.htmx(t, http.MethodDelete, "/wizard/items/features/9", nil), http.StatusNotFound)
	wantStatus(t, e.htmx(t, http.MethodPut, "/wizard/items/features/x", url.Values{"value": {"a"}}), http.StatusBadRequest)
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/items/bogus", nil), http.StatusNotFound)
}

func TestItems_NonHTMXRedirects(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.do(t, http.MethodPost, "/wizard/items/tech-stack", url.Values{}, false)
	wantStatus(t, w, http.StatusSeeOther)
	assert.Equal(t, "/wizard/details", w.Header().Get("Location"))
}

func TestAddPreset(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.htmx(t, http.MethodPost, "/wizard/presets/features", url.Values{"name": {"Analytics Integration"}})
	wantStatus(t, w, http.StatusOK)
	body := w.Body.String()
	assert.Contains(t, body, `value="Analytics Integration"`)
	assert.Contains(t, body, "✓ Analytics Integration", "preset chip marked as added")
	assert.NotContains(t, body, "Contact Form", "backend-gated preset offered to a static site")

	// Adding it again is a no-op.
	w = e.htmx(t, http.MethodPost, "/wizard/presets/features", url.Values{"name": {"Analytics Integration"}})
	wantStatus(t, w, http.StatusOK)
	assert.Equal(t, 1, strings.Count(w.Body.String(), `value="Analytics Integration"`))
}

func TestSaveStory(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.htmx(t, http.MethodPost, "/wizard/stories", url.Values{
		"index":       {"-1"},
		"title":       {"Save a link"},
		"description": {"As a user I want to save links."},
		"criteria":    {"- Link is stored\r\n* Title is fetched"},
	})
	wantStatus(t, w, http.StatusOK)
	body := w.Body.String()
	require.Contains(t, body, `id="story-panel"`)
	assert.Contains(t, body, "<li>Title is fetched</li>")

	// The story is stored in canonical form on the details page.
	assert.Contains(t, e.page(t, "/wizard/details"), "Acceptance Criteria:\n- Link is stored\n- Title is fetched")
}

func TestSaveStory_RequiresTitle(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/stories", url.Values{"index": {"-1"}, "criteria": {"a"}})
	wantStatus(t, w, http.StatusBadRequest)
	assert.Equal(t, "#story-editor", w.Header().Get("HX-Retarget"))
	assert.Contains(t, w.Body.String(), "A story needs a title.")
}

func TestEditStory(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.htmx(t, http.MethodGet, "/wizard/stories/edit", nil)
	wantStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "New story")

	wantStatus(t, e.htmx(t, http.MethodGet, "/wizard/stories/edit?index=5", nil), http.StatusNotFound)
	wantStatus(t, e.htmx(t, http.MethodGet, "/wizard/stories/edit?index=x", nil), http.StatusBadRequest)
}

func TestSelectStory_OutOfRange(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.htmx(t, http.MethodPost, "/wizard/stories/select", url.Values{"index": {"3"}})
	wantStatus(t, w, http.StatusNotFound)
}

func TestPromptsStep_Renders(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	e.htmx(t, http.MethodPost, "/wizard/details", url.Values{"name": {"Linkshelf"}})

	body := e.page(t, "/wizard/prompts")
	for _, want := range []string{"Development guide", "Guidelines", "Linkshelf"} {
		assert.Contains(t, body, want)
	}
	assert.NotContains(t, body, `/generate"`, "generate buttons shown without an AI provider")
}

func storyPhaseFor(t *testing.T, typ project.Type) string {
	t.Helper()
	ps := phase.Filter(phase.StoryPhases(), project.Config{Type: typ})
	require.NotEmpty(t, ps, "no story phases for %s", typ)
	return ps[0].ID
}

// copiedText decodes the clipboard payload carried by the HX-Trigger header.
func copiedText(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var trigger map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(w.Header().Get("HX-Trigger")), &trigger))
	require.Contains(t, trigger, "copyToClipboard")
	return trigger["copyToClipboard"]["text"]
}

func TestCopy_SetsTrigger(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	id := storyPhaseFor(t, project.Static)

	w := e.htmx(t, http.MethodPost, "/wizard/prompts/"+id+"/copy", url.Values{"catalog": {"story"}})
	wantStatus(t, w, http.StatusOK)
	assert.Contains(t, copiedText(t, w), "Project Type: static")
	assert.Equal(t, "Copied!", strings.TrimSpace(w.Body.String()))

	w = e.htmx(t, http.MethodPost, "/wizard/prompts/"+storiesRequestID+"/copy", url.Values{})
	wantStatus(t, w, http.StatusOK)
}

func TestCopy_NonASCIIProjectName(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/details", url.Values{"name": {"Café ✓ 🚀"}}), http.StatusNoContent)
	id := storyPhaseFor(t, project.Static)

	w := e.htmx(t, http.MethodPost, "/wizard/prompts/"+id+"/copy", url.Values{"catalog": {"story"}})
	wantStatus(t, w, http.StatusOK)

	header := w.Header().Get("HX-Trigger")
	for i := 0; i < len(header); i++ {
		require.Less(t, header[i], byte(0x80), "non-ASCII byte at %d in %q", i, header)
	}
	assert.Contains(t, copiedText(t, w), "Project Name: Café ✓ 🚀")
}

func TestCopy_UnknownPrompt(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/prompts/nope/copy", url.Values{"catalog": {"story"}}), http.StatusNotFound)
	wantStatus(t, e.htmx(t, http.MethodPost, "/wizard/prompts/nope/copy", url.Values{"catalog": {"other"}}), http.StatusNotFound)
}

func TestGenerate_NotConfigured(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	id := storyPhaseFor(t, project.Static)
	w := e.htmx(t, http.MethodPost, "/wizard/prompts/"+id+"/generate", url.Values{"catalog": {"story"}})
	wantStatus(t, w, http.StatusServiceUnavailable)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestGenerate(t *testing.T) {
	ai := &fakeCompleter{out: "Here is the plan."}
	e := newWizardTestEnv(t, ai)
	e.htmx(t, http.MethodPost, "/wizard/details", url.Values{"name": {"Linkshelf"}})
	id := storyPhaseFor(t, project.Static)

	w := e.htmx(t, http.MethodPost, "/wizard/prompts/"+id+"/generate", url.Values{"catalog": {"story"}})
	wantStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Here is the plan.")
	assert.Contains(t, w.Body.String(), `id="ai-`+id+`"`, "result slot id")

	require.Len(t, ai.reqs, 1)
	assert.Contains(t, ai.reqs[0].System, "Linkshelf")
	assert.NotEmpty(t, ai.reqs[0].Prompt)
}

func TestGenerate_ProviderError(t *testing.T) {
	ai := &fakeCompleter{err: &llm.APIError{Status: http.StatusTooManyRequests, Message: "rate limited"}}
	e := newWizardTestEnv(t, ai)
	id := storyPhaseFor(t, project.Static)

	w := e.htmx(t, http.MethodPost, "/wizard/prompts/"+id+"/generate", url.Values{"catalog": {"story"}})
	wantStatus(t, w, http.StatusBadGateway)
	assert.Contains(t, w.Body.String(), "rate limited")
}

func TestReset(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	e.htmx(t, http.MethodPost, "/wizard/details", url.Values{"name": {"Linkshelf"}})

	w := e.do(t, http.MethodPost, "/wizard/reset", url.Values{}, false)
	wantStatus(t, w, http.StatusSeeOther)
	assert.NotContains(t, e.page(t, "/wizard/details"), "Linkshelf", "reset kept the project name")
}

func TestThemeToggle(t *testing.T) {
	e := newWizardTestEnv(t, nil)

	w := e.htmx(t, http.MethodPost, "/theme", url.Values{"theme": {themeDark}})
	wantStatus(t, w, http.StatusNoContent)
	assert.Contains(t, w.Header().Get("HX-Trigger"), "themeChanged")
	require.NotNil(t, e.cookies["theme"])
	require.Equal(t, themeDark, e.cookies["theme"].Value)
	assert.Contains(t, e.page(t, "/wizard/type"), `data-theme="devguide-dark"`)

	// No value flips the current theme.
	wantStatus(t, e.htmx(t, http.MethodPost, "/theme", url.Values{}), http.StatusNoContent)
	assert.Equal(t, themeLight, e.cookies["theme"].Value)

	wantStatus(t, e.htmx(t, http.MethodPost, "/theme", url.Values{"theme": {"neon"}}), http.StatusBadRequest)
}

func TestHealthz(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	w := e.do(t, http.MethodGet, "/healthz", nil, false)
	wantStatus(t, w, http.StatusOK)
	assert.Equal(t, "ok", w.Body.String())
}

func TestStaticAssets(t *testing.T) {
	e := newWizardTestEnv(t, nil)
	wantStatus(t, e.do(t, http.MethodGet, "/static/js/app.js", nil, false), http.StatusOK)
	wantStatus(t, e.do(t, http.MethodGet, "/static/css/app.css", nil, false), http.StatusOK)
}
