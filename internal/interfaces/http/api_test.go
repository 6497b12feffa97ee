package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relampago/backoffice-api/internal/bootstrap"
	"github.com/relampago/backoffice-api/internal/infrastructure/storage"
	"github.com/relampago/backoffice-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completo sobre repositórios em memória
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminEmail    = "admin@relampago.com"
	adminPassword = "segredo-forte"
)

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Env: "test", Name: "relampago-test", Timezone: "America/Cuiaba"},
		JWT:       config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer},
		Upload:    config.UploadConfig{PublicPath: "/uploads", MaxBytes: 1 << 20},
		Redis:     config.RedisConfig{TTLSeconds: 60},
		RateLimit: config.RateLimitConfig{PerSecond: 0.01, Burst: 3},
		CORS:      config.CORSConfig{Origins: "*"},
	}
}

func newAPI(t *testing.T) (*fiber.App, *bootstrap.Services) {
	t.Helper()
	return newAPIWith(t, testConfig())
}

func newAPIWith(t *testing.T, cfg *config.Config) (*fiber.App, *bootstrap.Services) {
	t.Helper()
	files, err := storage.NewLocalStorage(t.TempDir(), "/uploads", "")
	require.NoError(t, err)
	app, svc := bootstrap.NewApp(cfg, bootstrap.MemoryRepositories(), bootstrap.Adapters{Storage: files})
	return app, svc
}

// postContact envia o formulário público com cabeçalhos extras.
func postContact(t *testing.T, app *fiber.App, body map[string]string, headers map[string]string) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func call(t *testing.T, app *fiber.App, method, path, auth string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func upload(t *testing.T, app *fiber.App, path, auth, filename string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Público
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_DriverMemory(t *testing.T) {
	app, _ := newAPI(t)
	body := decode(t, call(t, app, http.MethodGet, "/health", "", nil))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["database"])
}

func TestLogin_SucessoEFalha(t *testing.T) {
	app, svc := newAPI(t)
	created, err := svc.Auth.SeedAdmin(context.Background(), "Admin", adminEmail, adminPassword, false)
	require.NoError(t, err)
	require.True(t, created)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "password": adminPassword})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Authorization"), "Bearer "))
	body := decode(t, resp)
	assert.NotEmpty(t, body["access_token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": adminEmail, "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decode(t, resp)["code"])
}

func TestLogin_TokenAcessaMe(t *testing.T) {
	app, svc := newAPI(t)
	_, err := svc.Auth.SeedAdmin(context.Background(), "Admin", adminEmail, adminPassword, false)
	require.NoError(t, err)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "senha": adminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bearer := resp.Header.Get("Authorization")

	me := decode(t, call(t, app, http.MethodGet, "/api/auth/me", bearer, nil))
	assert.Equal(t, adminEmail, me["user"].(map[string]any)["email"])
}

func TestContato_LimiteDeRequisicoes(t *testing.T) {
	app, _ := newAPI(t)
	msg := map[string]string{"name": "Carla", "email": "carla@loja.com", "subject": "Orçamento", "message": "Quero panfletagem"}

	for i := 0; i < 3; i++ {
		resp := call(t, app, http.MethodPost, "/api/contacts", "", msg)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode, "requisição %d", i+1)
	}
	resp := call(t, app, http.MethodPost, "/api/contacts", "", msg)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	assert.Equal(t, "RATE_LIMIT", decode(t, resp)["code"])
}

func TestContato_CabecalhoDeProxyNaoBurlaLimite(t *testing.T) {
	app, _ := newAPI(t)
	msg := map[string]string{"name": "Carla", "email": "carla@loja.com", "subject": "Orçamento", "message": "Quero panfletagem"}

	ips := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
	for i, ip := range ips {
		resp := postContact(t, app, msg, map[string]string{"X-Forwarded-For": ip, "X-Real-IP": ip})
		resp.Body.Close()
		if i < 3 {
			require.Equal(t, http.StatusCreated, resp.StatusCode, "requisição %d", i+1)
			continue
		}
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	}
}

func TestContato_ProxyConfiavelDefineIPEGuardaCopia(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.ProxyHeader = "X-Forwarded-For"
	cfg.HTTP.TrustedProxies = []string{"0.0.0.0"} // endereço remoto de app.Test
	app, _ := newAPIWith(t, cfg)

	want := map[string]string{
		"Ana":     "203.0.113.111",
		"Bruno":   "198.51.100.2",
		"Cecília": "10.0.0.9",
	}
	for _, name := range []string{"Ana", "Bruno", "Cecília"} {
		msg := map[string]string{"name": name, "email": "contato@loja.com", "subject": "Orçamento", "message": "Mensagem de " + name}
		resp := postContact(t, app, msg, map[string]string{"X-Forwarded-For": want[name], "User-Agent": "navegador-" + name})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode, name)
	}

	resp := call(t, app, http.MethodGet, "/api/contacts", tokenForRole(t, "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode(t, resp)["items"].([]any)
	require.Len(t, items, 3)
	for _, it := range items {
		m := it.(map[string]any)
		name := m["name"].(string)
		assert.Equal(t, want[name], m["ip_address"], name)
		assert.Equal(t, "Mensagem de "+name, m["message"], name)
	}
}

func TestContato_ValidaCampos(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/contacts", "", map[string]string{"name": "Carla", "email": "invalido"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_CRUD(t *testing.T) {
	app, _ := newAPI(t)
	admin := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPost, "/api/clients", admin, map[string]string{"name": "Padaria Pão Quente", "email": "padaria@x.com", "state": "mt"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode(t, resp)
	id := created["id"].(string)
	assert.Equal(t, "MT", created["state"])
	assert.Equal(t, "ativo", created["status"])

	resp = call(t, app, http.MethodPost, "/api/clients", admin, map[string]string{"name": "Outra", "email": "PADARIA@x.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode(t, resp)["code"])

	list := decode(t, call(t, app, http.MethodGet, "/api/clients?q=pao", admin, nil))
	assert.Len(t, list["items"], 1)

	resp = call(t, app, http.MethodPut, "/api/clients/"+id, admin, map[string]string{"status": "inativo"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "inativo", decode(t, resp)["status"])

	resp = call(t, app, http.MethodDelete, "/api/clients/"+id, admin, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/clients/"+id, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientes_ExclusaoComAcaoVinculada_Retorna409(t *testing.T) {
	app, _ := newAPI(t)
	admin := tokenForRole(t, "admin")

	client := decode(t, call(t, app, http.MethodPost, "/api/clients", admin, map[string]string{"name": "Mercado Bom", "email": "m@x.com"}))
	id := client["id"].(string)

	resp := call(t, app, http.MethodPost, "/api/actions", admin, map[string]any{
		"client_id":  id,
		"types":      []string{"Panfletagem"},
		"start_date": "2026-10-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	action := decode(t, resp)
	assert.Equal(t, "Mercado Bom", action["client_name"])

	resp = call(t, app, http.MethodDelete, "/api/clients/"+id, admin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode(t, resp)["code"])
}

func TestClientes_SupervisorVeSoOsSeus(t *testing.T) {
	app, _ := newAPI(t)
	sup1 := tokenFor(t, "sup-1", "supervisor")
	sup2 := tokenFor(t, "sup-2", "supervisor")

	resp := call(t, app, http.MethodPost, "/api/clients", sup1, map[string]string{"name": "Farmácia", "email": "f@x.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode(t, resp)["id"].(string)

	assert.Len(t, decode(t, call(t, app, http.MethodGet, "/api/clients", sup2, nil))["items"], 0)
	assert.Len(t, decode(t, call(t, app, http.MethodGet, "/api/clients", sup1, nil))["items"], 1)
	assert.Len(t, decode(t, call(t, app, http.MethodGet, "/api/clients", tokenForRole(t, "viewer"), nil))["items"], 1)

	resp = call(t, app, http.MethodGet, "/api/clients/"+id, sup2, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientes_ViewerNaoEscreve(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/clients", tokenForRole(t, "viewer"), map[string]string{"name": "X", "email": "x@x.com"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestClientes_ImportacaoCSV(t *testing.T) {
	app, _ := newAPI(t)
	admin := tokenForRole(t, "admin")
	csv := "nome;email;telefone\nMaria;maria@x.com;65 99999-0001\nSem Email;;\n"

	resp := upload(t, app, "/api/clients/import", admin, "clientes.csv", []byte(csv))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.EqualValues(t, 1, body["imported_count"])
	assert.Len(t, body["errors"], 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Operações
// ──────────────────────────────────────────────────────────────────────────────

func TestFrota_PlacaDuplicadaRetorna409(t *testing.T) {
	app, _ := newAPI(t)
	admin := tokenForRole(t, "admin")

	resp := call(t, app, http.MethodPost, "/api/fleet/vehicles", admin, map[string]string{"plate": "abc1d23", "model": "Strada"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ABC1D23", decode(t, resp)["plate"])

	resp = call(t, app, http.MethodPost, "/api/fleet/vehicles", admin, map[string]string{"plate": "abc 1d23"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode(t, resp)["code"])
}

func TestAcoes_TerminoAntesDoInicioRetorna400(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/actions", tokenForRole(t, "supervisor"), map[string]any{
		"client_name": "Padaria Pão Quente",
		"types":       []string{"Panfletagem"},
		"start_date":  "10/03/2025",
		"end_date":    "09/03/2025",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
}

func TestAcoes_StatusAguardandoViraEmAberto(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/actions", tokenForRole(t, "admin"), map[string]any{
		"client_name": "Padaria Pão Quente",
		"types":       []string{"Panfletagem"},
		"start_date":  "2025-03-10",
		"status":      "aguardando",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "em aberto", decode(t, resp)["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Painel e rotas
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_FinanceiroSoParaFinanceiro(t *testing.T) {
	app, _ := newAPI(t)

	viewer := decode(t, call(t, app, http.MethodGet, "/api/metrics/dashboard", tokenForRole(t, "viewer"), nil))
	assert.Equal(t, true, viewer["finance_hidden"])
	assert.EqualValues(t, 0, viewer["balance_month"])

	manager := decode(t, call(t, app, http.MethodGet, "/api/metrics/dashboard", tokenForRole(t, "manager"), nil))
	assert.Equal(t, false, manager["finance_hidden"])
}

func TestRotaDesconhecidaRetorna404(t *testing.T) {
	app, _ := newAPI(t)
	for _, auth := range []string{"", tokenForRole(t, "admin")} {
		resp := call(t, app, http.MethodGet, "/api/nao-existe", auth, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	resp := call(t, app, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decode(t, resp)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Financeiro
// ──────────────────────────────────────────────────────────────────────────────

func TestTransacoes_ResumoSaldo(t *testing.T) {
	app, _ := newAPI(t)
	manager := tokenForRole(t, "manager")

	for i := 0; i < 3; i++ {
		resp := call(t, app, http.MethodPost, "/api/transactions", manager, map[string]any{"type": "entrada", "date": "2026-10-01", "amount": "100,00"})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	for i := 0; i < 2; i++ {
		resp := call(t, app, http.MethodPost, "/api/transactions", manager, map[string]any{"type": "saida", "date": "2026-10-02", "amount": 50})
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := call(t, app, http.MethodGet, "/api/transactions/summary", manager, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.EqualValues(t, 5, body["count"])
	assert.EqualValues(t, 300, body["entradas"])
	assert.EqualValues(t, 100, body["saidas"])
	assert.EqualValues(t, 200, body["saldo"])
}

func TestTransacoes_SupervisorBloqueado(t *testing.T) {
	app, _ := newAPI(t)
	for _, role := range []string{"supervisor", "viewer"} {
		resp := call(t, app, http.MethodGet, "/api/transactions", tokenForRole(t, role), nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, role)
	}
}

func TestTransacoes_ManagerNaoExclui(t *testing.T) {
	app, _ := newAPI(t)
	manager := tokenForRole(t, "manager")
	resp := call(t, app, http.MethodPost, "/api/transactions", manager, map[string]any{"date": "2026-10-01", "amount": 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode(t, resp)["id"].(string)

	resp = call(t, app, http.MethodDelete, "/api/transactions/"+id, manager, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/transactions/"+id, tokenForRole(t, "admin"), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuários
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarios_AdminNaoExcluiASiMesmo(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodDelete, "/api/users/"+testUserID, tokenForRole(t, "admin"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUsuarios_SoAdmin(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/users", tokenForRole(t, "manager"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Upload e exportação
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_TextoRetorna415(t *testing.T) {
	app, _ := newAPI(t)
	resp := upload(t, app, "/api/upload", tokenForRole(t, "admin"), "nota.txt", []byte("apenas texto"))
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", decode(t, resp)["code"])
}

func TestUpload_PNG(t *testing.T) {
	app, _ := newAPI(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	resp := upload(t, app, "/api/upload", tokenForRole(t, "supervisor"), "foto.png", buf.Bytes())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "png", body["format"])
	assert.EqualValues(t, 4, body["width"])
	assert.True(t, strings.HasPrefix(body["url"].(string), "/uploads/"))
}

func TestExport_CSVComBOM(t *testing.T) {
	app, _ := newAPI(t)
	admin := tokenForRole(t, "admin")
	resp := call(t, app, http.MethodPost, "/api/clients", admin, map[string]string{"name": "Ótica Visão", "email": "o@x.com"})
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/export/clients?format=csv", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	cd := resp.Header.Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(cd, "attachment; filename=\"clients-"), cd)
	assert.True(t, strings.HasSuffix(cd, ".csv\""), cd)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\ufeff"))
	assert.Contains(t, string(data), "Ótica Visão")
}

func TestExport_DatasetDesconhecido(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/export/nada", tokenForRole(t, "admin"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExport_FinanceiroExigePapel(t *testing.T) {
	app, _ := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/export/transactions", tokenForRole(t, "viewer"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas Prometheus
// ──────────────────────────────────────────────────────────────────────────────

func TestPrometheus_ContaRequisicoes(t *testing.T) {
	app, _ := newAPI(t)
	call(t, app, http.MethodGet, "/health", "", nil).Body.Close()

	resp := call(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(data), `route="/health"`)
}
