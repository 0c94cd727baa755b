package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func protectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(JwtProtected(config.Jwt{Secret: secret, Expiry: time.Hour}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"user_id": float64(1), "exp": exp.Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestJwtProtected_MissingToken(t *testing.T) {
	app := protectedApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
	assertProblemBody(t, resp)
}

// assertProblemBody checks that a token failure carries the same RFC 9457
// shape as every other API failure.
func assertProblemBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/problem+json") {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
	var pd struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&pd); err != nil {
		t.Fatalf("decoding problem body: %v", err)
	}
	if pd.Title != "Unauthorized" {
		t.Errorf("expected title %q, got %q", "Unauthorized", pd.Title)
	}
	if pd.Status != fiber.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", fiber.StatusUnauthorized, pd.Status)
	}
	if pd.Detail == "" {
		t.Error("expected a non-empty detail")
	}
}

func TestJwtProtected_ValidToken(t *testing.T) {
	app := protectedApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", time.Now().Add(time.Hour)))
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("expected %d, got %d", fiber.StatusOK, resp.StatusCode)
	}
}

func TestJwtProtected_WrongSignature(t *testing.T) {
	app := protectedApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", time.Now().Add(time.Hour)))
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestJwtProtected_ExpiredToken(t *testing.T) {
	app := protectedApp("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", time.Now().Add(-time.Hour)))
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("expected %d, got %d", fiber.StatusUnauthorized, resp.StatusCode)
	}
}

func TestJwtError_AlwaysUnauthorized(t *testing.T) {
	for _, msg := range []string{"Missing or malformed JWT", "any other error"} {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			return jwtError(c, errors.New(msg))
		})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, _ := app.Test(req)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%q: expected %d, got %d", msg, fiber.StatusUnauthorized, resp.StatusCode)
		}
		assertProblemBody(t, resp)
	}
}
