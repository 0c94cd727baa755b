// Package auth implements the credential service: registration, login,
// logout, and per-request resolution of the caller from a bearer token.
//
// Tokens are signed JWTs whose jti is persisted in access_tokens. Validity
// is recomputed on every request: a token whose record is gone (logout) or
// expired no longer resolves to a user, regardless of its signature.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenName mirrors the label the original clients were issued under.
const tokenName = "auth_token"

// dummyHash keeps the unknown-email path at one bcrypt compare, so login
// failures cost the same whether the email exists or not.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

type Service struct {
	uow    repository.UnitOfWork
	cfg    config.Jwt
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, cfg config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Register creates a user with the default role and issues a token. A taken
// email fails with domain.ErrAlreadyExists; syntactic validation happens at
// the transport layer before this is called.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	logger := s.logger.With("email", email)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		logger.Error("register: hashing failed", "error", err)
		return nil, "", err
	}

	record := domain.NewAccessToken(0, tokenName, s.cfg.Expiry)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		taken, err := uow.UserRepository().ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return err
		}
		record.UserID = user.ID
		return uow.TokenRepository().Create(ctx, record)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			logger.Error("register failed", "error", err)
		}
		return nil, "", err
	}

	token, err := s.signToken(user, record)
	if err != nil {
		logger.Error("register: signing failed", "error", err)
		return nil, "", err
	}
	logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login verifies the email/password pair and issues a fresh token. The
// unknown-email and wrong-password failures are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.uow.UserRepository().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			checkPasswordHash(password, dummyHash)
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !checkPasswordHash(password, user.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	record := domain.NewAccessToken(user.ID, tokenName, s.cfg.Expiry)
	if err := s.uow.TokenRepository().Create(ctx, record); err != nil {
		return nil, "", err
	}
	token, err := s.signToken(user, record)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Logout revokes exactly the presented token. Other sessions of the same
// user stay valid.
func (s *Service) Logout(ctx context.Context, token *jwt.Token) error {
	_, jti, err := parseClaims(token)
	if err != nil {
		return err
	}
	if err := s.uow.TokenRepository().Delete(ctx, jti); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return err
	}
	return nil
}

// CurrentUser resolves the caller from a signature-checked JWT. The jti must
// still have a live, unexpired record; the owning user must still exist.
func (s *Service) CurrentUser(ctx context.Context, token *jwt.Token) (*domain.User, error) {
	userID, jti, err := parseClaims(token)
	if err != nil {
		return nil, err
	}
	record, err := s.uow.TokenRepository().Get(ctx, jti)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if record.Expired() || record.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.uow.UserRepository().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if err := s.uow.TokenRepository().Touch(ctx, jti); err != nil {
		s.logger.Warn("token touch failed", "jti", jti, "error", err)
	}
	return user, nil
}

func (s *Service) signToken(user *domain.User, record *domain.AccessToken) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["jti"] = record.ID.String()
	claims["user_id"] = float64(user.ID)
	claims["email"] = user.Email
	claims["exp"] = record.ExpiresAt.Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

func parseClaims(token *jwt.Token) (userID uint, jti uuid.UUID, err error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		err = domain.ErrUnauthorized
		return
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID < 1 {
		err = domain.ErrUnauthorized
		return
	}
	rawJti, ok := claims["jti"].(string)
	if !ok {
		err = domain.ErrUnauthorized
		return
	}
	jti, err = uuid.Parse(rawJti)
	if err != nil {
		err = domain.ErrUnauthorized
		return
	}
	userID = uint(rawID)
	return
}

func checkPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
