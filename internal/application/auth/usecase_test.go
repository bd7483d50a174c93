package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukits/kittrack-api/internal/application/auth"
	"github.com/edukits/kittrack-api/internal/application/dto"
	"github.com/edukits/kittrack-api/internal/domain"
	"github.com/edukits/kittrack-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User), byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "kittrack-test",
	})
	return uc, repo
}

func TestRegisterUser_RolPorDefecto(t *testing.T) {
	uc, repo := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@edukits.example", Password: "super-secreta", Name: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleProgramCoordinator, out.Role,
		"sin rol explícito se asigna program_coordinator")
	assert.Equal(t, "active", out.Status)

	saved := repo.byEmail["ana@edukits.example"]
	require.NotNil(t, saved)
	assert.NotEqual(t, "super-secreta", saved.PasswordHash, "el password nunca se guarda plano")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	in := dto.RegisterRequest{Email: "ana@edukits.example", Password: "super-secreta"}

	_, err := uc.RegisterUser(in)
	require.NoError(t, err)

	_, err = uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolDesconocido(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "x@edukits.example", Password: "super-secreta", Role: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@edukits.example", Password: "super-secreta", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@edukits.example", Password: "super-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@edukits.example", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@edukits.example", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@edukits.example", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, repo := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@edukits.example", Password: "super-secreta"})
	require.NoError(t, err)
	repo.byEmail["ana@edukits.example"].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@edukits.example", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
