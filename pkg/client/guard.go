package client

// Rotas de redirecionamento do painel.
const (
	LoginPath     = "/login"
	ForbiddenPath = "/forbidden"
)

// GuardOptions AdminOnly tem precedência sobre AllowedRoles.
type GuardOptions struct {
	AdminOnly    bool
	AllowedRoles []string
}

// Decision Redirect vazio quando Allowed.
type Decision struct {
	Allowed  bool
	Redirect string
	Reason   string
}

// Guard checagem síncrona da sessão; enquanto Loading a decisão é negar sem redirecionar.
func Guard(a *Auth, opts GuardOptions) Decision {
	if a.Loading() {
		return Decision{Reason: "verificando autenticação"}
	}
	u := a.User()
	if u == nil {
		return Decision{Redirect: LoginPath, Reason: "sessão ausente"}
	}
	if opts.AdminOnly && !a.IsAdmin() {
		return Decision{Redirect: ForbiddenPath, Reason: "acesso negado: requer administrador"}
	}
	if len(opts.AllowedRoles) > 0 && !contains(opts.AllowedRoles, u.Role) {
		return Decision{Redirect: ForbiddenPath, Reason: "acesso negado: papel sem permissão"}
	}
	return Decision{Allowed: true}
}

// RoleGate lista vazia libera qualquer usuário autenticado com papel.
func RoleGate(a *Auth, roles ...string) bool {
	u := a.User()
	if u == nil || u.Role == "" {
		return false
	}
	return len(roles) == 0 || contains(roles, u.Role)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
