package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relampago/backoffice-api/internal/bootstrap"
	"github.com/relampago/backoffice-api/internal/infrastructure/storage"
	"github.com/relampago/backoffice-api/pkg/client"
	"github.com/relampago/backoffice-api/pkg/config"
)

const (
	adminEmail    = "admin@relampago.com"
	adminPassword = "segredo-forte"
)

type clientRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// newServer sobe a API completa (repositórios em memória) num httptest.Server.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{
		App:       config.AppConfig{Env: "test", Name: "relampago-test", Timezone: "America/Cuiaba"},
		JWT:       config.JWTConfig{Secret: "client-test-secret", Expiration: 60, Issuer: "relampago-test"},
		Upload:    config.UploadConfig{PublicPath: "/uploads", MaxBytes: 1 << 20},
		Redis:     config.RedisConfig{TTLSeconds: 60},
		RateLimit: config.RateLimitConfig{PerSecond: 100, Burst: 100},
		CORS:      config.CORSConfig{Origins: "*"},
	}
	files, err := storage.NewLocalStorage(t.TempDir(), "/uploads", "")
	require.NoError(t, err)
	app, svc := bootstrap.NewApp(cfg, bootstrap.MemoryRepositories(), bootstrap.Adapters{Storage: files})
	_, err = svc.Auth.SeedAdmin(context.Background(), "Admin", adminEmail, adminPassword, false)
	require.NoError(t, err)

	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_LoginPersisteSessao(t *testing.T) {
	srv := newServer(t)
	store, err := client.NewFileStore(t.TempDir())
	require.NoError(t, err)
	c := client.New(srv.URL+"/api", store)
	auth := client.NewAuth(c)

	res := auth.Login(context.Background(), "admin", adminPassword)
	require.True(t, res.OK, res.Message)
	assert.True(t, auth.IsAdmin())
	assert.True(t, auth.IsSupervisor())

	s, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, adminEmail, s.User.Email)

	// nova instância reidrata a partir dos arquivos
	again := client.NewAuth(client.New(srv.URL+"/api", store))
	assert.True(t, again.Loading())
	require.NoError(t, again.Restore(context.Background()))
	assert.False(t, again.Loading())
	require.NotNil(t, again.User())
	assert.Equal(t, "admin", again.User().Role)
}

func TestAuth_LoginInvalido(t *testing.T) {
	srv := newServer(t)
	auth := client.NewAuth(client.New(srv.URL+"/api", client.NewMemoryStore()))

	res := auth.Login(context.Background(), "admin", "errada")
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Nil(t, auth.User())
}

func TestAuth_RestoreComTokenInvalidoLimpa(t *testing.T) {
	srv := newServer(t)
	store := client.NewMemoryStore()
	require.NoError(t, store.Set(client.Session{Token: "lixo", User: &client.User{Role: "admin"}}))

	auth := client.NewAuth(client.New(srv.URL+"/api", store))
	require.NoError(t, auth.Restore(context.Background()))

	assert.Nil(t, auth.User())
	_, ok, _ := store.Get()
	assert.False(t, ok)
}

func TestAuth_Logout(t *testing.T) {
	srv := newServer(t)
	store := client.NewMemoryStore()
	auth := client.NewAuth(client.New(srv.URL+"/api", store))
	require.True(t, auth.Login(context.Background(), adminEmail, adminPassword).OK)

	require.NoError(t, auth.Logout())
	assert.False(t, auth.IsAuthenticated())
	_, ok, _ := store.Get()
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Client e Resource
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_401LimpaSessaoEChamaHook(t *testing.T) {
	srv := newServer(t)
	store := client.NewMemoryStore()
	require.NoError(t, store.Set(client.Session{Token: "expirado", User: &client.User{Role: "admin"}}))

	var redirects int32
	c := client.New(srv.URL+"/api", store, client.OnUnauthorized(func() { atomic.AddInt32(&redirects, 1) }))

	_, err := client.NewResource[clientRow](c, "clients").List(context.Background(), nil)
	assert.ErrorIs(t, err, client.ErrSessionExpired)
	assert.EqualValues(t, 1, atomic.LoadInt32(&redirects))
	_, ok, _ := store.Get()
	assert.False(t, ok)
}

func TestResource_CRUDClientes(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL+"/api", client.NewMemoryStore())
	require.True(t, client.NewAuth(c).Login(context.Background(), "admin", adminPassword).OK)
	ctx := context.Background()

	clients := client.NewResource[clientRow](c, "/clients/")
	created, err := clients.Create(ctx, map[string]string{"name": "Mercado Central", "email": "central@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "ativo", created.Status)

	list, err := clients.List(ctx, url.Values{"q": {"central"}})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Page.Total)

	updated, err := clients.Update(ctx, created.ID, map[string]string{"status": "pendente"})
	require.NoError(t, err)
	assert.Equal(t, "pendente", updated.Status)

	require.NoError(t, clients.Delete(ctx, created.ID))

	_, err = clients.Get(ctx, created.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestClient_UploadTextoRecusado(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL+"/api", client.NewMemoryStore())
	require.True(t, client.NewAuth(c).Login(context.Background(), "admin", adminPassword).OK)

	_, err := c.Upload(context.Background(), "nota.txt", strings.NewReader("texto"))
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnsupportedMediaType, apiErr.Status)
}

func TestClient_InjetaBearer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	store := client.NewMemoryStore()
	require.NoError(t, store.Set(client.Session{Token: "abc", User: &client.User{}}))
	c := client.New(srv.URL+"/", store)
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "clients/1", nil, nil))
	assert.Equal(t, "Bearer abc", got)
}

func TestFileStore_GravaTokenEUser(t *testing.T) {
	dir := t.TempDir()
	store, err := client.NewFileStore(dir)
	require.NoError(t, err)

	_, ok, err := store.Get()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(client.Session{Token: "tok", User: &client.User{ID: "1", Role: "viewer"}}))
	raw, err := os.ReadFile(filepath.Join(dir, "token"))
	require.NoError(t, err)
	assert.Equal(t, "tok", string(raw))
	raw, err = os.ReadFile(filepath.Join(dir, "user"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"role":"viewer"`)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	_, ok, _ = store.Get()
	assert.False(t, ok)
}
