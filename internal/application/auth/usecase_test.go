package auth

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Parqueadero-api/internal/application/dto"
	"github.com/jhoicas/Parqueadero-api/internal/domain"
	"github.com/jhoicas/Parqueadero-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Parqueadero-api/pkg/jwt"
)

type memOperators struct {
	mu   sync.Mutex
	byID map[string]*entity.Operator
}

func (m *memOperators) Create(_ context.Context, op *entity.Operator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[op.ID] = op
	return nil
}

func (m *memOperators) GetByID(_ context.Context, id string) (*entity.Operator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[id], nil
}

func (m *memOperators) FindByEmail(_ context.Context, email string) (*entity.Operator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, op := range m.byID {
		if op.Email == email {
			return op, nil
		}
	}
	return nil, nil
}

func newTestAuth() (*AuthUseCase, *memOperators) {
	repo := &memOperators{byID: map[string]*entity.Operator{}}
	uc := NewAuthUseCase(repo, JWTConfig{Secret: "s3cret", ExpMinutes: 10, Issuer: "test"})
	uc.cost = bcrypt.MinCost
	return uc, repo
}

func TestRegisterYLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestAuth()

	op, err := uc.Register(ctx, dto.RegisterRequest{Email: " Admin@Lot.co ", Password: "12345678", LotID: "lot-1", Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "admin@lot.co", op.Email)
	assert.Equal(t, "admin@lot.co", op.Name)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@lot.co", Password: "12345678"})
	require.NoError(t, err)
	opID, lotID, role, err := pkgjwt.Parse("s3cret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, op.ID, opID)
	assert.Equal(t, "lot-1", lotID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_Duplicado(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestAuth()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678", LotID: "lot-1"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "A@B.co", Password: "12345678", LotID: "lot-1"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.co", Password: "12345678", LotID: "lot-1", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Fallas(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestAuth()
	op, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.co", Password: "12345678", LotID: "lot-1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "x@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrOperatorNotFound)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.byID[op.ID].Status = "inactive"
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.co", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
