package webapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/fintrackhq/fintrack/internal/fixtures"
	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/fintrackhq/fintrack/pkg/domain"
	accountsvc "github.com/fintrackhq/fintrack/pkg/service/account"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJwtSecret = "test-secret"

// WebTestSuite runs the real Fiber app and real services over mocked
// repositories. Each test gets a fresh app and fresh mocks.
type WebTestSuite struct {
	suite.Suite
	app *fiber.App
	uow *fixtures.MockUnitOfWork
}

func (s *WebTestSuite) SetupTest() {
	s.uow = fixtures.NewMockUnitOfWork(s.T())
	cfg := &config.App{
		Env:       "test",
		Server:    &config.Server{},
		Log:       &config.Log{},
		DB:        &config.DB{},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: testJwtSecret, Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Cors:      &config.Cors{AllowOrigins: "*"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	aSvc := authsvc.New(s.uow, *cfg.Auth.Jwt, logger)
	accSvc := accountsvc.New(s.uow, logger)
	s.app = SetupApp(aSvc, accSvc, cfg)
}

func (s *WebTestSuite) makeRequest(method, path, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, 5000)
	s.Require().NoError(err)
	return resp
}

// authAs mints a signed bearer token for user and primes the mocks so the
// per-request token resolution succeeds.
func (s *WebTestSuite) authAs(user *domain.User) string {
	jti := uuid.New()
	record := &domain.AccessToken{
		ID:        jti,
		UserID:    user.ID,
		Name:      "auth_token",
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	s.uow.Tokens.On("Get", mock.Anything, jti).Return(record, nil).Maybe()
	s.uow.Tokens.On("Touch", mock.Anything, jti).Return(nil).Maybe()
	s.uow.Users.On("Get", mock.Anything, user.ID).Return(user, nil).Maybe()
	return s.signedToken(user, jti, time.Hour)
}

func (s *WebTestSuite) signedToken(user *domain.User, jti uuid.UUID, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"jti":     jti.String(),
		"user_id": float64(user.ID),
		"email":   user.Email,
		"exp":     time.Now().UTC().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJwtSecret))
	s.Require().NoError(err)
	return signed
}
