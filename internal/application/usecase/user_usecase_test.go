package usecase_test

import (
	"context"
	"testing"

	"github.com/relampago/backoffice-api/internal/application/dto"
	"github.com/relampago/backoffice-api/internal/application/usecase"
	"github.com/relampago/backoffice-api/internal/domain"
	"github.com/relampago/backoffice-api/internal/domain/entity"
	"github.com/relampago/backoffice-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_CreateNormalizaEPadroniza(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(ctx, dto.CreateUserRequest{Name: " Bia ", Email: "Bia@Relampago.com", Password: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, "Bia", out.Name)
	assert.Equal(t, "bia@relampago.com", out.Email)
	assert.Equal(t, "bia", out.Username)
	assert.Equal(t, entity.RoleViewer, out.Role)
	assert.True(t, out.Active)

	stored, err := repo.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo")))

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Outra", Email: "bia@relampago.com", Username: "outra", Password: "segredo"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Curta", Email: "c@relampago.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "Papel", Email: "p@relampago.com", Role: "dono", Password: "segredo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUseCase_NaoAgeSobreSiMesmo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(memory.NewUserRepo())

	admin, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Admin", Email: "admin@relampago.com", Role: entity.RoleAdmin, Password: "segredo"})
	require.NoError(t, err)
	actor := dto.Actor{UserID: admin.ID, Role: entity.RoleAdmin}

	_, err = uc.SetStatus(ctx, actor, admin.ID, false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, actor, admin.ID), domain.ErrForbidden)

	outro, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Caio", Email: "caio@relampago.com", Password: "segredo"})
	require.NoError(t, err)
	inativo, err := uc.SetStatus(ctx, actor, outro.ID, false)
	require.NoError(t, err)
	assert.False(t, inativo.Active)

	require.NoError(t, uc.Delete(ctx, actor, outro.ID))
	_, err = uc.GetByID(ctx, outro.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserUseCase_ResetPassword(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo()
	uc := usecase.NewUserUseCase(repo)

	u, err := uc.Create(ctx, dto.CreateUserRequest{Name: "Dani", Email: "dani@relampago.com", Password: "segredo"})
	require.NoError(t, err)

	out, err := uc.ResetPassword(ctx, u.ID, "")
	require.NoError(t, err)
	require.Len(t, out.TempPassword, 10)
	stored, _ := repo.GetByID(ctx, u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(out.TempPassword)))

	out, err = uc.ResetPassword(ctx, u.ID, "nova-senha")
	require.NoError(t, err)
	assert.Empty(t, out.TempPassword)
	stored, _ = repo.GetByID(ctx, u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nova-senha")))

	_, err = uc.ResetPassword(ctx, "nao-existe", "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
