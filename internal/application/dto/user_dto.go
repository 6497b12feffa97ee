package dto

import "time"

// CreateUserRequest entrada para criar usuário (senha em texto, o caso de uso gera o hash).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
	Password string `json:"password"`
}

// UpdateUserRequest campos nil não são alterados. Password vazio mantém a senha.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// UserStatusRequest aceita "active" ou o legado "ativo".
type UserStatusRequest struct {
	Active *bool `json:"active"`
	Ativo  *bool `json:"ativo"`
}

// Value devolve o status pedido, se houver.
func (r UserStatusRequest) Value() (bool, bool) {
	if r.Active != nil {
		return *r.Active, true
	}
	if r.Ativo != nil {
		return *r.Ativo, true
	}
	return false, false
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPasswordResponse TempPassword só vem quando a senha foi gerada pelo servidor.
type ResetPasswordResponse struct {
	Message      string `json:"message"`
	TempPassword string `json:"tempPassword,omitempty"`
}

// UserResponse saída de usuário (sem senha).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest aceita username/email/user e password/senha.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	User     string `json:"user"`
	Password string `json:"password"`
	Senha    string `json:"senha"`
}

// Identifier primeiro identificador preenchido.
func (r LoginRequest) Identifier() string {
	for _, s := range []string{r.Username, r.Email, r.User} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Secret senha informada em qualquer dos dois campos.
func (r LoginRequest) Secret() string {
	if r.Password != "" {
		return r.Password
	}
	return r.Senha
}

// LoginResponse token JWT e usuário da sessão.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // segundos
	User        UserResponse `json:"user"`
}

type MeResponse struct {
	User UserResponse `json:"user"`
}
