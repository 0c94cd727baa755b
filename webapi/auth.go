package webapi

import (
	"errors"

	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/fintrackhq/fintrack/pkg/middleware"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

func AuthRoutes(app *fiber.App, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/register", Register(authSvc))
	app.Post("/login", Login(authSvc))
	app.Post("/logout", middleware.JwtProtected(*cfg.Auth.Jwt), Logout(authSvc))
}

// Register creates a user account and issues a bearer token.
// @Summary Register a new user
// @Description Register with name, email, password and confirmation
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterInput true "Registration data"
// @Success 201 {object} map[string]any
// @Failure 422 {object} ProblemDetails
// @Router /register [post]
func Register(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.RegisterInput](c)
		if input == nil {
			return err
		}
		user, token, err := authSvc.Register(c.Context(), input.Name, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return ValidationFailedJSON(c, map[string][]string{
					"email": {"The email has already been taken."},
				})
			}
			log.Errorf("Failed to register user: %v", err)
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User registered successfully",
			"user":    dto.NewUserRead(user),
			"token":   token,
		})
	}
}

// Login authenticates an email/password pair and issues a bearer token.
// @Summary User login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginInput true "Login credentials"
// @Success 200 {object} map[string]any
// @Failure 422 {object} ProblemDetails
// @Router /login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.LoginInput](c)
		if input == nil {
			return err
		}
		user, token, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				// Unknown email and wrong password share this response.
				return ValidationFailedJSON(c, map[string][]string{
					"email": {"Invalid credentials"},
				})
			}
			log.Errorf("Failed to login: %v", err)
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", err.Error())
		}
		return c.JSON(fiber.Map{
			"user":  dto.NewUserRead(user),
			"token": token,
		})
	}
}

// Logout revokes the token used on this request.
// @Summary Logout
// @Description Revoke the presented bearer token; other sessions stay valid
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} ProblemDetails
// @Router /logout [post]
// @Security BearerAuth
func Logout(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context")
		}
		if err := authSvc.Logout(c.Context(), token); err != nil {
			status := ErrorToStatusCode(err)
			if status == fiber.StatusInternalServerError {
				log.Errorf("Failed to logout: %v", err)
			}
			return ErrorResponseJSON(c, status, "Failed to logout", err.Error())
		}
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}

// currentUser resolves the caller from the request token, writing a 401
// problem when it cannot. Callers return the error as-is when user is nil.
func currentUser(c *fiber.Ctx, authSvc *authsvc.Service) (*domain.User, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context")
	}
	user, err := authSvc.CurrentUser(c.Context(), token)
	if err != nil {
		status := ErrorToStatusCode(err)
		if status == fiber.StatusInternalServerError {
			log.Errorf("Failed to resolve current user: %v", err)
			return nil, ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		}
		return nil, ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "token no longer valid")
	}
	return user, nil
}
