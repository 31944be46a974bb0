package service

import (
	"context"

	"taxpal/internal/auth"
	"taxpal/internal/cache"
	"taxpal/internal/models"
	"taxpal/internal/storage"
)

type UserService struct {
	users      storage.UserStorage
	categories storage.CategoryStorage
	jwt        *auth.JWTManager
	profiles   *cache.ProfileCache // nil when redis is unavailable
}

func NewUserService(users storage.UserStorage, categories storage.CategoryStorage, jwtManager *auth.JWTManager, profiles *cache.ProfileCache) *UserService {
	return &UserService{
		users:      users,
		categories: categories,
		jwt:        jwtManager,
		profiles:   profiles,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) error {
	existing, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  passwordHash,
		Country:       req.Country,
		IncomeBracket: req.IncomeBracket,
	}
	if user.Country == "" {
		user.Country = models.DefaultCountry
	}
	if user.IncomeBracket == "" {
		user.IncomeBracket = models.DefaultIncomeBracket
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return err
	}

	// New accounts start with the standard expense categories.
	return s.categories.CreateMany(ctx, DefaultCategories(user.ID))
}

// Login deliberately returns the same error for an unknown email and a
// wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	if s.profiles != nil {
		if user, found := s.profiles.Get(ctx, userID); found {
			return user, nil
		}
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if s.profiles != nil {
		s.profiles.Set(ctx, user)
	}
	return user, nil
}
