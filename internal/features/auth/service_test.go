package auth

import (
	"context"
	"errors"
	"testing"

	common_models "go-hrm/internal/common/models"
	"go-hrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAuthRepo struct {
	tenants map[primitive.ObjectID]*Tenant
	users   map[string]*User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		tenants: map[primitive.ObjectID]*Tenant{},
		users:   map[string]*User{},
	}
}

func (r *fakeAuthRepo) CreateTenant(ctx context.Context, tenant *Tenant) error {
	tenant.ID = primitive.NewObjectID()
	r.tenants[tenant.ID] = tenant
	return nil
}

func (r *fakeAuthRepo) CreateUser(ctx context.Context, user *User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeAuthRepo) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *fakeAuthRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func TestRegisterAndLogin(t *testing.T) {
	utils.SetSecret("test-secret")
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse", "Acme")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != common_models.RoleAdmin {
		t.Fatalf("Role = %q, want ADMIN", user.Role)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("password stored in clear")
	}

	tenant, ok := repo.tenants[user.TenantID]
	if !ok {
		t.Fatal("tenant not created")
	}
	if tenant.OwnerID != user.ID {
		t.Fatalf("tenant owner = %v, want %v", tenant.OwnerID, user.ID)
	}
	if tenant.Slug == "" {
		t.Fatal("tenant slug empty")
	}

	token, logged, err := svc.Login(ctx, "asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("logged in as %v, want %v", logged.ID, user.ID)
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TenantID != user.TenantID.Hex() || claims.Role != common_models.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	utils.SetSecret("test-secret")
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterGuards(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "X", "x@example.com", "short", ""); !errors.Is(err, ErrInvalidSignup) {
		t.Fatalf("short password err = %v, want ErrInvalidSignup", err)
	}

	if _, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "asha@example.com", "another pass", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email err = %v, want ErrEmailTaken", err)
	}
}
