package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidSignup      = errors.New("invalid signup payload")
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, orgName string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
}

type AuthServiceImpl struct {
	Repo AuthRepository
}

func NewAuthService(repo AuthRepository) AuthService {
	return &AuthServiceImpl{Repo: repo}
}

// Register creates a new tenant with the caller as its admin user.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password, orgName string) (*User, error) {
	if email == "" || len(password) < 8 {
		return nil, ErrInvalidSignup
	}
	if orgName == "" {
		orgName = fmt.Sprintf("%s's Organization", name)
	}

	taken, err := s.Repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ownerID := primitive.NewObjectID()

	tenant := &Tenant{
		Name:      orgName,
		Slug:      utils.Slugify(orgName) + "-" + primitive.NewObjectID().Hex()[:4],
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateTenant(ctx, tenant); err != nil {
		return nil, err
	}

	user := &User{
		ID:           ownerID,
		TenantID:     tenant.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         common_models.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.Repo.FindUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.Active {
		return "", nil, ErrAccountDisabled
	}

	token, err := utils.GenerateToken(user.ID, user.TenantID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
