package business_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaledev/lastbite-backend/internal/modules/business"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

type mockRepository struct {
	createOwnerFunc       func(ctx context.Context, o *business.Owner) error
	getByOwnerIDFunc      func(ctx context.Context, ownerID uuid.UUID) (*business.Owner, error)
	deactivateCascadeFunc func(ctx context.Context, ownerID uuid.UUID) error
}

func (m *mockRepository) CreateOwner(ctx context.Context, o *business.Owner) error {
	return m.createOwnerFunc(ctx, o)
}

func (m *mockRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*business.Owner, error) {
	return m.getByOwnerIDFunc(ctx, ownerID)
}

func (m *mockRepository) DeactivateCascade(ctx context.Context, ownerID uuid.UUID) error {
	return m.deactivateCascadeFunc(ctx, ownerID)
}

type mockUserRepository struct {
	getUserByIDFunc func(ctx context.Context, id string) (*user.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	return m.getUserByIDFunc(ctx, id)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (m *mockUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockUserRepository) ListCustomerIDs(ctx context.Context) ([]uuid.UUID, error) {
	return nil, nil
}

func TestOnboard(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		req       business.OnboardRequest
		userRole  user.Role
		userErr   error
		createErr error
		wantErrIs error
	}{
		{
			name:     "owner_onboarded",
			req:      business.OnboardRequest{BusinessName: "Corner Bakery", Address: "12 Cairo Rd"},
			userRole: user.RoleBusinessOwner,
		},
		{
			name:      "missing_business_name",
			req:       business.OnboardRequest{Address: "12 Cairo Rd"},
			userRole:  user.RoleBusinessOwner,
			wantErrIs: business.ErrMissingFields,
		},
		{
			name:      "customer_cannot_onboard",
			req:       business.OnboardRequest{BusinessName: "Corner Bakery", Address: "12 Cairo Rd"},
			userRole:  user.RoleCustomer,
			wantErrIs: business.ErrNotBusinessOwner,
		},
		{
			name:      "unknown_user",
			req:       business.OnboardRequest{BusinessName: "Corner Bakery", Address: "12 Cairo Rd"},
			userErr:   user.ErrNotFound,
			wantErrIs: user.ErrNotFound,
		},
		{
			name:      "second_profile_rejected",
			req:       business.OnboardRequest{BusinessName: "Corner Bakery", Address: "12 Cairo Rd"},
			userRole:  user.RoleBusinessOwner,
			createErr: business.ErrAlreadyOnboarded,
			wantErrIs: business.ErrAlreadyOnboarded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{
				createOwnerFunc: func(ctx context.Context, o *business.Owner) error { return tt.createErr },
			}
			userRepo := &mockUserRepository{
				getUserByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
					if tt.userErr != nil {
						return nil, tt.userErr
					}
					return &user.User{ID: ownerID, Role: tt.userRole, IsActive: true}, nil
				},
			}
			svc := business.NewService(repo, userRepo)

			o, err := svc.Onboard(context.Background(), ownerID, tt.req)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ownerID, o.OwnerID)
			assert.Equal(t, tt.req.BusinessName, o.BusinessName)
			assert.False(t, o.IsVerified)
		})
	}
}

func TestDeactivate(t *testing.T) {
	ownerID := uuid.New()
	var got uuid.UUID
	repo := &mockRepository{
		deactivateCascadeFunc: func(ctx context.Context, id uuid.UUID) error {
			got = id
			return nil
		},
	}
	svc := business.NewService(repo, &mockUserRepository{})

	require.NoError(t, svc.Deactivate(context.Background(), ownerID))
	assert.Equal(t, ownerID, got)
}
