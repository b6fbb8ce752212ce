package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

func newServiceWithMocks(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "chave-de-teste"}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	user := &domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@adstats.local",
		PasswordHash: hashPassword(t, "Senha@Forte1"),
		Active:       true,
		RoleID:       domain.RoleOperator,
	}

	userRepo.EXPECT().GetUserByEmail("ana@adstats.local").Return(user, nil)

	token, err := service.LoginUser("Ana@AdStats.local ", "Senha@Forte1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// O token emitido deve carregar as claims do próprio usuário.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleOperator, claims.UserRoleID)
}

func TestService_LoginUser_SenhaIncorreta(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	user := &domain.User{
		ID:           7,
		Email:        "ana@adstats.local",
		PasswordHash: hashPassword(t, "Senha@Forte1"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByEmail("ana@adstats.local").Return(user, nil)

	token, err := service.LoginUser("ana@adstats.local", "senha-errada")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_LoginUser_ContaDesativada(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	user := &domain.User{
		ID:           9,
		Email:        "bruno@adstats.local",
		PasswordHash: hashPassword(t, "Senha@Forte1"),
		Active:       false,
	}

	userRepo.EXPECT().GetUserByEmail("bruno@adstats.local").Return(user, nil)

	token, err := service.LoginUser("bruno@adstats.local", "Senha@Forte1")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestService_LoginUser_UsuarioInexistente(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	userRepo.EXPECT().GetUserByEmail("ninguem@adstats.local").Return(nil, nil)

	token, err := service.LoginUser("ninguem@adstats.local", "Senha@Forte1")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_CreateUser(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	userRepo.EXPECT().GetUserByEmail("carla@adstats.local").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
		u.ID = 12
		return u, nil
	})

	created, err := service.CreateUser(&domain.User{
		Name:         "Carla",
		Lastname:     "Souza",
		Email:        " Carla@AdStats.local",
		PasswordHash: "Senha@Forte1",
	})
	assert.NoError(t, err)
	assert.Equal(t, 12, created.ID)
	assert.Equal(t, "carla@adstats.local", created.Email)
	assert.Equal(t, domain.RoleReporter, created.RoleID)
	assert.False(t, created.Active)

	// A senha nunca é persistida em claro.
	assert.NotEqual(t, "Senha@Forte1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Senha@Forte1")))
}

func TestService_CreateUser_EmailJaCadastrado(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	userRepo.EXPECT().GetUserByEmail("carla@adstats.local").Return(&domain.User{ID: 12}, nil)

	created, err := service.CreateUser(&domain.User{
		Name:         "Carla",
		Lastname:     "Souza",
		Email:        "carla@adstats.local",
		PasswordHash: "Senha@Forte1",
	})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_CreateUser_DadosObrigatorios(t *testing.T) {
	service, _ := newServiceWithMocks(t)

	created, err := service.CreateUser(&domain.User{
		Name:  "Carla",
		Email: "carla@adstats.local",
	})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newServiceWithMocks(t)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha forte", password: "Senha@Forte1", valid: true},
		{name: "muito curta", password: "S@f1", valid: false},
		{name: "sem maiúscula", password: "senha@forte1", valid: false},
		{name: "sem minúscula", password: "SENHA@FORTE1", valid: false},
		{name: "sem número", password: "Senha@Forte", valid: false},
		{name: "sem caractere especial", password: "SenhaForte1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	user := &domain.User{
		ID:           7,
		Email:        "ana@adstats.local",
		PasswordHash: hashPassword(t, "Senha@Antiga1"),
		Active:       true,
	}

	userRepo.EXPECT().GetUserByID(7).Return(user, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Senha@Nova1")))
		return nil
	})

	err := service.ChangePassword(7, "Senha@Antiga1", "Senha@Nova1")
	assert.NoError(t, err)
}

func TestService_ChangePassword_SenhaAtualIncorreta(t *testing.T) {
	service, userRepo := newServiceWithMocks(t)

	user := &domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "Senha@Antiga1"),
	}

	userRepo.EXPECT().GetUserByID(7).Return(user, nil)

	err := service.ChangePassword(7, "senha-errada", "Senha@Nova1")
	assert.EqualError(t, err, "senha atual incorreta")
}
