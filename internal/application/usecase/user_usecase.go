package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/domain/query"
	"github.com/relampago/backoffice-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// UserUseCase aplica as regras de negócio de usuários (somente admin chega aqui).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com a porta de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List filtros: q (nome, usuário, e-mail), role, status ativo/inativo.
func (uc *UserUseCase) List(ctx context.Context, f dto.ListFilter) (*dto.ListResponse[dto.UserResponse], error) {
	p, err := ParamsFrom(f)
	if err != nil {
		return nil, err
	}
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := query.Filter(all, func(u *entity.User) bool {
		return query.MatchText(p.Text, u.Name, u.Username, u.Email) &&
			query.MatchEqual(p.Get("role"), u.Role) &&
			matchActive(p.Status, u.Active)
	})
	byName(items, func(u *entity.User) string { return u.Name })
	return paginate(mapAll(items, func(u *entity.User) dto.UserResponse { return *ToUserResponse(u) }), p), nil
}

func matchActive(filter string, active bool) bool {
	switch query.Fold(filter) {
	case "ativo", "active", "true":
		return active
	case "inativo", "inactive", "false":
		return !active
	}
	return true
}

// GetByID obtém um usuário por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(u), nil
}

// Create gera o hash bcrypt da senha. Papel vazio vira viewer.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if len(in.Password) < minPasswordLen {
		return nil, invalid("a senha deve ter ao menos %d caracteres", minPasswordLen)
	}
	now := time.Now()
	u := &entity.User{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Username:  strings.TrimSpace(in.Username),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Role:      strings.ToLower(strings.TrimSpace(in.Role)),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if u.Role == "" {
		u.Role = entity.RoleViewer
	}
	if u.Username == "" {
		u.Username = strings.SplitN(u.Email, "@", 2)[0]
	}
	if err := uc.validate(ctx, u); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// Update campos nil ficam como estão; o admin não pode se desativar por aqui.
func (uc *UserUseCase) Update(ctx context.Context, actor dto.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	setString(&u.Name, in.Name)
	setString(&u.Username, in.Username)
	setString(&u.Email, in.Email)
	setString(&u.Phone, in.Phone)
	if in.Role != nil {
		u.Role = strings.ToLower(strings.TrimSpace(*in.Role))
	}
	u.Email = strings.ToLower(u.Email)
	if in.Active != nil {
		if !*in.Active && id == actor.UserID {
			return nil, fmt.Errorf("%w: não é possível desativar o próprio usuário", domain.ErrForbidden)
		}
		u.Active = *in.Active
	}
	if err := uc.validate(ctx, u); err != nil {
		return nil, err
	}
	if in.Password != nil && *in.Password != "" {
		if err := setPassword(u, *in.Password); err != nil {
			return nil, err
		}
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// SetStatus ativa ou desativa; desativar a si mesmo é proibido.
func (uc *UserUseCase) SetStatus(ctx context.Context, actor dto.Actor, id string, active bool) (*dto.UserResponse, error) {
	return uc.Update(ctx, actor, id, dto.UpdateUserRequest{Active: &active})
}

// ResetPassword usa a senha informada ou gera uma temporária, devolvida uma única vez.
func (uc *UserUseCase) ResetPassword(ctx context.Context, id, password string) (*dto.ResetPasswordResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	out := &dto.ResetPasswordResponse{Message: "senha redefinida"}
	if password == "" {
		password, err = tempPassword()
		if err != nil {
			return nil, err
		}
		out.TempPassword = password
	}
	if err := setPassword(u, password); err != nil {
		return nil, err
	}
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, actor dto.Actor, id string) error {
	if id == actor.UserID {
		return fmt.Errorf("%w: não é possível excluir o próprio usuário", domain.ErrForbidden)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *UserUseCase) validate(ctx context.Context, u *entity.User) error {
	if u.Name == "" {
		return invalid("nome é obrigatório")
	}
	if !validEmail(u.Email) {
		return invalid("e-mail inválido: %q", u.Email)
	}
	if !entity.ValidRole(u.Role) {
		return invalid("papel inválido: %q", u.Role)
	}
	other, err := uc.repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != u.ID {
		return fmt.Errorf("%w: e-mail já cadastrado: %s", domain.ErrDuplicate, u.Email)
	}
	other, err = uc.repo.GetByUsername(ctx, u.Username)
	if err != nil {
		return err
	}
	if other != nil && other.ID != u.ID {
		return fmt.Errorf("%w: usuário já cadastrado: %s", domain.ErrDuplicate, u.Username)
	}
	return nil
}

func setPassword(u *entity.User, password string) error {
	if len(password) < minPasswordLen {
		return invalid("a senha deve ter ao menos %d caracteres", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func tempPassword() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b))[:10], nil
}

// ToUserResponse nunca expõe o hash da senha.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
