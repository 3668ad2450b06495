package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/cicddemo/server/internal/config"
	"codeberg.org/cicddemo/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, environment string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return NewServer(&config.Config{
		Port:        config.DefaultPort,
		Environment: environment,
	})
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	return w
}

func TestRoutes_DocumentedKeys(t *testing.T) {
	srv := newTestServer(t, "development")

	cases := []struct {
		method string
		path   string
		keys   []string
	}{
		{http.MethodGet, "/", []string{"message", "status", "version"}},
		{http.MethodGet, "/health", []string{"status"}},
		{http.MethodGet, "/version", []string{"version"}},
		{http.MethodGet, "/api/info", []string{"app_name", "environment", "version"}},
		{http.MethodPost, "/deploy", []string{"status"}},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(srv, tc.method, tc.path, "")

			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Len(t, body, len(tc.keys))
			for _, key := range tc.keys {
				assert.Contains(t, body, key)
			}
		})
	}
}

func TestRoutes_Scenarios(t *testing.T) {
	srv := newTestServer(t, "development")

	w := do(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(srv, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"1.0.0"}`, w.Body.String())

	w = do(srv, http.MethodPost, "/deploy", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())

	w = do(srv, http.MethodGet, "/", "")
	assert.JSONEq(t, `{"message":"Welcome to Jenkins CI/CD Automation Demo","status":"running","version":"1.0.0"}`, w.Body.String())
}

func TestRoutes_NotFound(t *testing.T) {
	srv := newTestServer(t, "development")

	for _, path := range []string{"/nonexistent", "/invalid", "/HEALTH", "/api", "/api/info/extra", "/info"} {
		w := do(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, "GET %s", path)
	}
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, "development")

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/health"},
		{http.MethodPost, "/"},
		{http.MethodPut, "/version"},
		{http.MethodDelete, "/api/info"},
		{http.MethodGet, "/deploy"},
		{http.MethodHead, "/health"},
	}

	for _, tc := range cases {
		w := do(srv, tc.method, tc.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRoutes_TrailingSlashRedirects(t *testing.T) {
	srv := newTestServer(t, "development")

	w := do(srv, http.MethodGet, "/health/", "")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/health", w.Header().Get("Location"))
}

func TestRoutes_DeployLogCarriesRequestFields(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.SetDefault(logger.New("development", &buf))
	defer logger.SetDefault(prev)

	srv := newTestServer(t, "development")

	w := do(srv, http.MethodPost, "/deploy", "")
	require.Equal(t, http.StatusOK, w.Code)

	out := buf.String()
	assert.Contains(t, out, `msg="Deployment triggered"`)
	assert.Contains(t, out, "service="+config.ServiceName)
	assert.Contains(t, out, "client_ip=192.0.2.1")
	assert.Contains(t, out, "path=/deploy")
}

func TestRoutes_DeployIgnoresMalformedBody(t *testing.T) {
	srv := newTestServer(t, "development")

	w := do(srv, http.MethodPost, "/deploy", `{not json`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}

func TestRoutes_InfoReflectsEnvironment(t *testing.T) {
	t.Setenv("PORT", "")

	t.Run("set", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "staging")
		cfg, err := config.LoadEnvironmentVariables()
		require.NoError(t, err)

		gin.SetMode(gin.TestMode)
		w := do(NewServer(cfg), http.MethodGet, "/api/info", "")

		assert.JSONEq(t, `{"app_name":"Jenkins CI/CD App","environment":"staging","version":"1.0.0"}`, w.Body.String())
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "")
		cfg, err := config.LoadEnvironmentVariables()
		require.NoError(t, err)

		gin.SetMode(gin.TestMode)
		w := do(NewServer(cfg), http.MethodGet, "/api/info", "")

		assert.JSONEq(t, `{"app_name":"Jenkins CI/CD App","environment":"development","version":"1.0.0"}`, w.Body.String())
	})
}

func TestRoutes_PanicRecovered(t *testing.T) {
	srv := newTestServer(t, "development")
	srv.router.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	w := do(srv, http.MethodGet, "/boom", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"server_error"`)
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t, "development")

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "https://ci.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PlainRequestUnaffected(t *testing.T) {
	srv := newTestServer(t, "development")

	w := do(srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDoc(t *testing.T) {
	srv := newTestServer(t, "development")

	w := do(srv, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)

	for path, method := range map[string]string{
		"/":         "get",
		"/health":   "get",
		"/version":  "get",
		"/api/info": "get",
		"/deploy":   "post",
	} {
		require.Contains(t, doc.Paths, path)
		assert.Contains(t, doc.Paths[path], method)
	}
}
