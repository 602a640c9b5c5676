package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shop/internal/actor"
	"shop/internal/dto"
	ierr "shop/internal/errors"
	"shop/internal/logger"
	"shop/internal/mapper"
	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/validation"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	users      repositories.Repository[models.User]
	uow        repositories.UnitOfWork
	jwtSecret  []byte
	tokenDurat time.Duration
	validate   *validator.Validate
	now        func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.Repository[models.User], uow repositories.UnitOfWork, jwtSecret string) *AuthService {
	return &AuthService{
		users:      users,
		uow:        uow,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
		validate:   validation.New(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Register validates the request, hashes the password and saves the user.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if req == nil {
		return nil, ierr.NewValidation("registration is required")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, ierr.NewValidation("%s", validation.Summary(err))
	}

	taken, err := s.findBy(ctx, "username", req.Username, func(u *models.User) string { return u.Username })
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, ierr.NewConflict("username '%s' already taken", req.Username)
	}
	email := strings.ToLower(req.Email)
	taken, err = s.findBy(ctx, "email", email, func(u *models.User) string { return u.Email })
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, ierr.NewConflict("email '%s' already registered", req.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	user.IsActive = true
	a := actor.FromContext(ctx)
	user.MarkCreated(a.ID, a.Name, s.now())

	s.users.Add(user)
	if _, err := s.uow.Commit(ctx); err != nil {
		return nil, err
	}

	out := mapper.UserToDTO(user)
	return &out, nil
}

// Login authenticates a user and returns a signed JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.findBy(ctx, "username", username, func(u *models.User) string { return u.Username })
	if err != nil {
		return "", err
	}
	if user == nil || !user.IsActive {
		return "", ierr.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ierr.NewUnauthorized("invalid credentials")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"exp":      now.Add(s.tokenDurat).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		logger.Debug().Err(err).Msg("Token validation error")
		return nil, ierr.NewUnauthorized("invalid token: %v", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ierr.NewUnauthorized("invalid token")
}

// ActorFromClaims builds the request actor from validated claims.
func ActorFromClaims(claims jwt.MapClaims) (actor.Actor, error) {
	raw, _ := claims["user_id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return actor.Actor{}, ierr.NewUnauthorized("invalid token subject")
	}
	name, _ := claims["username"].(string)
	return actor.Actor{ID: id, Name: name}, nil
}

func (s *AuthService) findBy(ctx context.Context, column, value string, get func(*models.User) string) (*models.User, error) {
	return s.users.Query().
		Where(repositories.Eq(column, value, get)).
		Where(repositories.NotDeleted[models.User]()).
		First(ctx)
}
