package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ou-api/internal/application/auth"
	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stock-ou-api/pkg/jwt"
)

const (
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testSecret    = "test-secret"
)

type memUsers struct{ items []*entity.User }

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.items = append(r.items, u)
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) GetByEmailAndCompany(_ context.Context, email, companyID string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memCompanies struct{}

func (memCompanies) Create(context.Context, *entity.Company) error { return nil }

func (memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if id != testCompanyID {
		return nil, nil
	}
	return &entity.Company{ID: id, Name: "Distribuciones Andinas", Status: "active"}, nil
}

func (memCompanies) GetByNIT(context.Context, string) (*entity.Company, error) { return nil, nil }

func (memCompanies) HasActiveModule(context.Context, string, string) (bool, error) { return false, nil }

func (memCompanies) ListModules(context.Context, string) ([]*entity.CompanyModule, error) {
	return nil, nil
}

func (memCompanies) UpsertModule(context.Context, *entity.CompanyModule) error { return nil }

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(&memUsers{}, memCompanies{}, auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "test"})
}

func TestRegisterYLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Ana@Example.com ", Password: "secreto123", CompanyID: testCompanyID})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, entity.RoleBodeguero, user.Role, "rol por defecto")

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@example.com", Password: "otro12345", CompanyID: testCompanyID})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secreto123"})
	require.NoError(t, err)
	userID, companyID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, testCompanyID, companyID)
	assert.Equal(t, entity.RoleBodeguero, role)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_EmpresaInexistente(t *testing.T) {
	_, err := newAuth().RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "ana@example.com",
		Password:  "secreto123",
		CompanyID: "00000000-0000-0000-0000-000000000099",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
