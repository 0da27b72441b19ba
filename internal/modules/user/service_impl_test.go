package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

type mockRepository struct {
	createUserFunc     func(ctx context.Context, u *user.User) error
	getUserByIDFunc    func(ctx context.Context, id string) (*user.User, error)
	getUserByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	deactivateFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepository) CreateUser(ctx context.Context, u *user.User) error {
	return m.createUserFunc(ctx, u)
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	return m.getUserByIDFunc(ctx, id)
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getUserByEmailFunc(ctx, email)
}

func (m *mockRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return m.deactivateFunc(ctx, id)
}

func (m *mockRepository) ListCustomerIDs(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name      string
		req       user.RegisterRequest
		createErr error
		wantErrIs error
	}{
		{
			name: "customer_created",
			req:  user.RegisterRequest{Email: "c@example.com", Password: "secret", Name: "Chipo", Role: user.RoleCustomer},
		},
		{
			name: "business_owner_created",
			req:  user.RegisterRequest{Email: "b@example.com", Password: "secret", Name: "Bakery", Role: user.RoleBusinessOwner},
		},
		{
			name:      "missing_email",
			req:       user.RegisterRequest{Password: "secret", Name: "Chipo", Role: user.RoleCustomer},
			wantErrIs: user.ErrMissingFields,
		},
		{
			name:      "unknown_role",
			req:       user.RegisterRequest{Email: "c@example.com", Password: "secret", Name: "Chipo", Role: "admin"},
			wantErrIs: user.ErrInvalidRole,
		},
		{
			name:      "duplicate_email",
			req:       user.RegisterRequest{Email: "c@example.com", Password: "secret", Name: "Chipo", Role: user.RoleCustomer},
			createErr: user.ErrEmailTaken,
			wantErrIs: user.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				createUserFunc: func(ctx context.Context, u *user.User) error { return tt.createErr },
			}
			svc := user.NewService(repo)

			u, err := svc.RegisterUser(context.Background(), tt.req)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Email, u.Email)
			assert.Equal(t, tt.req.Role, u.Role)
			assert.True(t, u.IsActive)

			// The stored hash must verify against the original password and
			// never equal it.
			assert.NotEqual(t, tt.req.Password, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.req.Password)))
		})
	}
}

func TestDeactivateUser(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	repo := &mockRepository{
		deactivateFunc: func(ctx context.Context, uid uuid.UUID) error {
			got = uid
			return nil
		},
	}
	svc := user.NewService(repo)

	require.NoError(t, svc.DeactivateUser(context.Background(), id))
	assert.Equal(t, id, got)
}
