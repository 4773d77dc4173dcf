package httptransport_test

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitedoctor/internal/capabilities"
	"sitedoctor/internal/changelog"
	"sitedoctor/internal/doctor"
	"sitedoctor/internal/doctor/checks"
	"sitedoctor/internal/flash"
	"sitedoctor/internal/fsprobe"
	"sitedoctor/internal/identity"
	"sitedoctor/internal/siteconfig"
	httptransport "sitedoctor/internal/transport/http"
	"sitedoctor/pkg/testutil"
)

const testSigningKey = "test-signing-key"

type pageResponse struct {
	Route   string `json:"route"`
	Notices []struct {
		Severity string `json:"severity"`
		Message  string `json:"message"`
		Detail   string `json:"detail"`
	} `json:"notices"`
}

type stack struct {
	router http.Handler
	rows   *changelog.MemoryCounter
}

// newStack wires a full transport over real collaborators: writable temp
// dirs, declared capabilities, an in-memory row counter and flash store.
func newStack(t *testing.T, cfgValues map[string]any) *stack {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tmp := t.TempDir()
	for _, dir := range []string{"cache", "config", "files", "files/uploads"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmp, dir), 0o755))
	}

	reg := doctor.NewRegistry()
	require.NoError(t, checks.RegisterAll(reg, checks.Options{}))

	rows := changelog.NewMemoryCounter()
	store := flash.NewMemoryStore()
	sink := doctor.NewSink(flash.NewPresenter(store), logger)

	deps := doctor.Collaborators{
		Config: siteconfig.FromMap(cfgValues),
		FS: fsprobe.New(map[string]string{
			"cache":  filepath.Join(tmp, "cache"),
			"config": filepath.Join(tmp, "config"),
			"files":  filepath.Join(tmp, "files"),
		}),
		Rows:     rows,
		Identity: identity.New(testSigningKey, nil),
		Caps:     capabilities.New(map[string]bool{"image-codec": true, "exif": true}),
	}

	runner := doctor.NewRunner(reg, doctor.DefaultRouteTable(), sink, deps, logger, nil)

	h := httptransport.NewHandler(runner, store, logger)
	return &stack{
		router: httptransport.NewRouter(h, identity.New(testSigningKey, nil)),
		rows:   rows,
	}
}

func signToken(t *testing.T, roles ...string) string {
	t.Helper()
	claims := identity.Claims{
		UserID:   "u1",
		Username: "root",
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}

func TestDashboardNotices(t *testing.T) {
	s := newStack(t, nil)
	s.rows.Set("changelog", 15000)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
	req.Host = "intranet"
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[pageResponse](t, rr)

	require.Equal(t, "dashboard", resp.Route)
	require.Len(t, resp.Notices, 2)

	assert.Equal(t, "warning", resp.Notices[0].Severity)
	assert.Contains(t, resp.Notices[0].Message, "does not contain a dot")

	assert.Equal(t, "warning", resp.Notices[1].Severity)
	assert.Contains(t, resp.Notices[1].Message, "change log")
	assert.NotEmpty(t, resp.Notices[1].Detail)
}

func TestLoginOnIPEscalates(t *testing.T) {
	s := newStack(t, nil)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/login")
	req.Host = "192.168.1.5"
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[pageResponse](t, rr)

	require.Len(t, resp.Notices, 2)
	assert.Equal(t, "warning", resp.Notices[0].Severity)
	assert.Equal(t, "error", resp.Notices[1].Severity)
	assert.Contains(t, resp.Notices[1].Message, "192.168.1.5")
}

func TestLegacyBrowserNotice(t *testing.T) {
	s := newStack(t, nil)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/login")
	req.Host = "cms.example.com"
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.1; Trident/6.0)")
	rr := testutil.DoRequest(s.router, req)

	resp := testutil.UnmarshalResponse[pageResponse](t, rr)
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, "info", resp.Notices[0].Severity)
	assert.Contains(t, resp.Notices[0].Message, "Internet Explorer")
}

func TestMailNoticeRequiresConfigCapability(t *testing.T) {
	s := newStack(t, nil)

	t.Run("admin token sees the mail notice", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
		req.Host = "cms.example.com"
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin"))
		rr := testutil.DoRequest(s.router, req)

		resp := testutil.UnmarshalResponse[pageResponse](t, rr)
		require.Len(t, resp.Notices, 1)
		assert.Contains(t, resp.Notices[0].Message, "mail configuration")
	})

	t.Run("editor token does not", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
		req.Host = "cms.example.com"
		req.Header.Set("Authorization", "Bearer "+signToken(t, "editor"))
		rr := testutil.DoRequest(s.router, req)

		resp := testutil.UnmarshalResponse[pageResponse](t, rr)
		assert.Empty(t, resp.Notices)
	})

	t.Run("anonymous does not", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
		req.Host = "cms.example.com"
		rr := testutil.DoRequest(s.router, req)

		resp := testutil.UnmarshalResponse[pageResponse](t, rr)
		assert.Empty(t, resp.Notices)
	})
}

func TestInvalidTokenIsIgnored(t *testing.T) {
	s := newStack(t, nil)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
	req.Host = "cms.example.com"
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := testutil.DoRequest(s.router, req)

	// Advisory layer never blocks the page.
	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[pageResponse](t, rr)
	assert.Empty(t, resp.Notices)
}

func TestUnlistedRouteRunsNoPass(t *testing.T) {
	s := newStack(t, nil)
	s.rows.Set("changelog", 15000)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/content")
	req.Host = "intranet"
	rr := testutil.DoRequest(s.router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[pageResponse](t, rr)
	assert.Equal(t, "content", resp.Route)
	assert.Empty(t, resp.Notices)
}

func TestSessionCookieIssuedOnce(t *testing.T) {
	s := newStack(t, nil)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
	req.Host = "cms.example.com"
	rr := testutil.DoRequest(s.router, req)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sd_session", cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)

	// A request presenting the cookie gets no replacement.
	req = testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
	req.Host = "cms.example.com"
	req.AddCookie(cookies[0])
	rr = testutil.DoRequest(s.router, req)
	assert.Empty(t, rr.Result().Cookies())
}

func TestConfiguredRowLimit(t *testing.T) {
	s := newStack(t, map[string]any{
		"general": map[string]any{
			"changelog": map[string]any{"rowlimit": 5000},
		},
	})
	s.rows.Set("changelog", 6000)

	req := testutil.NewRequest(t, http.MethodGet, "/admin/dashboard")
	req.Host = "cms.example.com"
	rr := testutil.DoRequest(s.router, req)

	resp := testutil.UnmarshalResponse[pageResponse](t, rr)
	require.Len(t, resp.Notices, 1)
	assert.Contains(t, resp.Notices[0].Message, "6000")
	assert.Contains(t, resp.Notices[0].Message, "5000")
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	s := newStack(t, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}
