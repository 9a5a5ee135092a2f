package auth

import (
	"context"
	"errors"

	"go-hrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrUserNotFound = errors.New("user not found")

// AuthRepository covers the two collections login needs. Lookups are global
// across tenants because there is no tenant context before a token exists.
type AuthRepository interface {
	CreateTenant(ctx context.Context, tenant *Tenant) error
	CreateUser(ctx context.Context, user *User) error
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type AuthRepositoryImpl struct {
	Tenants *mongo.Collection
	Users   *mongo.Collection
}

func NewAuthRepository(mongodb *database.MongodbDB) AuthRepository {
	return &AuthRepositoryImpl{
		Tenants: mongodb.DB.Collection("tenants"),
		Users:   mongodb.DB.Collection("users"),
	}
}

func (r *AuthRepositoryImpl) CreateTenant(ctx context.Context, tenant *Tenant) error {
	res, err := r.Tenants.InsertOne(ctx, tenant)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tenant.ID = oid
	}
	return nil
}

func (r *AuthRepositoryImpl) CreateUser(ctx context.Context, user *User) error {
	res, err := r.Users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *AuthRepositoryImpl) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepositoryImpl) EmailTaken(ctx context.Context, email string) (bool, error) {
	count, err := r.Users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
