package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"carplogAPI/internal/user"
)

type UserService struct {
	users *mongo.Collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{
		users: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique index on email. The pre-check in
// Register is racy on its own; the index makes uniqueness a storage
// constraint.
func (s *UserService) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

// Register creates a user with a bcrypt-hashed credential and an empty
// profile seeded with the optional name.
func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.Public, error) {
	count, err := s.users.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := user.Profile{Name: req.Name}
	profile.ApplyDefaults()

	u := &user.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		HashedPassword: string(hash),
		Profile:        profile,
		CreatedAt:      time.Now().UTC(),
		IsActive:       true,
	}

	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return u.Public(), nil
}

// Authenticate verifies the email/password pair. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	var u user.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &u, nil
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*user.User, error) {
	var u user.User
	err := s.users.FindOne(ctx, bson.M{"id": userID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &u, nil
}

// UpdateProfile replaces the entire profile subdocument with the one
// supplied; it is not a merge.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, profile *user.Profile) (*user.Public, error) {
	profile.ApplyDefaults()

	result, err := s.users.UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{"$set": bson.M{"profile": profile}},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	updated, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

// Exists reports whether the user id still resolves. Token verification
// does not check this, so services do before touching owner-scoped data.
func (s *UserService) Exists(ctx context.Context, userID string) error {
	count, err := s.users.CountDocuments(ctx, bson.M{"id": userID})
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}
