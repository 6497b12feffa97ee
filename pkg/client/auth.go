package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
	RoleViewer     = "viewer"
)

// LoginResult resultado do login; Message explica a falha.
type LoginResult struct {
	OK      bool
	Message string
}

// Auth estado de sessão do processo. Seguro para uso concorrente.
type Auth struct {
	c *Client

	mu      sync.RWMutex
	user    *User
	loading bool
}

// NewAuth começa em Loading até a primeira chamada de Restore.
func NewAuth(c *Client) *Auth {
	return &Auth{c: c, loading: true}
}

// Restore reidrata a sessão do store e confirma o token em /auth/me.
// Qualquer falha limpa a sessão.
func (a *Auth) Restore(ctx context.Context) error {
	defer a.setLoading(false)

	s, ok, err := a.c.store.Get()
	if err != nil || !ok {
		a.setUser(nil)
		if err != nil {
			_ = a.c.store.Clear()
		}
		return err
	}
	var me struct {
		User *User `json:"user"`
	}
	if err := a.c.Do(ctx, http.MethodGet, "/auth/me", nil, &me); err != nil {
		_ = a.c.store.Clear()
		a.setUser(nil)
		if errors.Is(err, ErrSessionExpired) {
			return nil
		}
		return err
	}
	u := me.User
	if u == nil {
		u = s.User
	}
	if err := a.c.store.Set(Session{Token: s.Token, User: u}); err != nil {
		return err
	}
	a.setUser(u)
	return nil
}

// Login guarda token e usuário devolvidos pela API.
func (a *Auth) Login(ctx context.Context, username, password string) LoginResult {
	var out struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
		User        *User  `json:"user"`
	}
	err := a.c.Do(ctx, http.MethodPost, "/auth/login", map[string]string{"username": username, "password": password}, &out)
	if err != nil {
		return LoginResult{Message: loginMessage(err)}
	}
	token := out.AccessToken
	if token == "" {
		token = out.Token
	}
	if token == "" {
		return LoginResult{Message: "Token de acesso não recebido"}
	}
	if err := a.c.store.Set(Session{Token: token, User: out.User}); err != nil {
		return LoginResult{Message: err.Error()}
	}
	a.setUser(out.User)
	return LoginResult{OK: true}
}

func loginMessage(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrSessionExpired):
		return "Usuário ou senha inválidos"
	case err != nil:
		return err.Error()
	}
	return "Erro ao fazer login"
}

// Logout só limpa a sessão local; a API não tem rota de logout.
func (a *Auth) Logout() error {
	a.setUser(nil)
	return a.c.store.Clear()
}

// User cópia do usuário da sessão, ou nil.
func (a *Auth) User() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

func (a *Auth) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *Auth) IsAuthenticated() bool { return a.User() != nil }

func (a *Auth) IsAdmin() bool { return a.role() == RoleAdmin }

// IsSupervisor admin também conta como supervisor.
func (a *Auth) IsSupervisor() bool {
	r := a.role()
	return r == RoleSupervisor || r == RoleAdmin
}

func (a *Auth) role() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return ""
	}
	return a.user.Role
}

func (a *Auth) setUser(u *User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *Auth) setLoading(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = v
}
