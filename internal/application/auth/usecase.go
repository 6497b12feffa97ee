package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"github.com/relampago/backoffice-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login, sessão corrente e seed do administrador.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login aceita usuário ou e-mail. Credencial errada e usuário inexistente dão o mesmo erro.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	ident := strings.TrimSpace(in.Identifier())
	secret := in.Secret()
	if ident == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.lookup(ctx, ident)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   uc.jwtCfg.ExpMinutes * 60,
		User:        *usecase.ToUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) lookup(ctx context.Context, ident string) (*entity.User, error) {
	byEmail := strings.Contains(ident, "@")
	first, second := uc.userRepo.GetByUsername, uc.userRepo.GetByEmail
	if byEmail {
		first, second = second, first
	}
	u, err := first(ctx, ident)
	if err != nil || u != nil {
		return u, err
	}
	return second(ctx, ident)
}

// Me devolve o usuário do token; ErrUserNotFound se sumiu, ErrInactiveUser se foi desativado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if !u.Active {
		return nil, domain.ErrInactiveUser
	}
	return &dto.MeResponse{User: *usecase.ToUserResponse(u)}, nil
}

// SeedAdmin cria o administrador quando o e-mail ainda não existe. Com resetPassword,
// um admin já existente recebe a senha informada e é reativado.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, name, email, password string, resetPassword bool) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	now := time.Now()
	if existing != nil {
		if !resetPassword {
			return false, nil
		}
		existing.PasswordHash = string(hash)
		existing.Active = true
		existing.UpdatedAt = now
		return false, uc.userRepo.Update(ctx, existing)
	}
	if name == "" {
		name = "Administrador"
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Username:     strings.SplitN(email, "@", 2)[0],
		Email:        email,
		Role:         entity.RoleAdmin,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}
