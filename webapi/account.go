package webapi

import (
	"strconv"

	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/fintrackhq/fintrack/pkg/middleware"
	accountsvc "github.com/fintrackhq/fintrack/pkg/service/account"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func AccountRoutes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	guard := middleware.JwtProtected(*cfg.Auth.Jwt)
	app.Get("/accounts", guard, ListAccounts(accountSvc, authSvc))
	app.Post("/accounts", guard, CreateAccount(accountSvc, authSvc))
	app.Get("/accounts/:id", guard, ShowAccount(accountSvc, authSvc))
	app.Patch("/accounts/:id", guard, UpdateAccount(accountSvc, authSvc))
	app.Delete("/accounts/:id", guard, DestroyAccount(accountSvc, authSvc))
}

func parseAccountID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", nil)
	}
	return uint(id), nil
}

// ListAccounts returns the caller's visible accounts.
// @Summary List accounts
// @Description Admins see every account, other callers only their own
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountRead
// @Failure 401 {object} ProblemDetails
// @Router /accounts [get]
// @Security BearerAuth
func ListAccounts(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := currentUser(c, authSvc)
		if caller == nil {
			return err
		}
		accounts, err := accountSvc.List(c.Context(), caller)
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to list accounts", err.Error())
		}
		return c.JSON(dto.NewAccountReadList(accounts))
	}
}

// CreateAccount stores a new account.
// @Summary Create an account
// @Description Create an account; user_id defaults to the caller
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.AccountCreate true "Account data"
// @Success 201 {object} map[string]any
// @Failure 422 {object} ProblemDetails
// @Router /accounts [post]
// @Security BearerAuth
func CreateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := currentUser(c, authSvc)
		if caller == nil {
			return err
		}
		input, err := BindAndValidate[dto.AccountCreate](c)
		if input == nil {
			return err
		}
		account, err := accountSvc.Create(c.Context(), caller, input)
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Failed to create account", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Account created",
			"data":    dto.NewAccountRead(account),
		})
	}
}

// ShowAccount checks the id exists, then returns the caller's scoped list.
// The id is otherwise ignored — kept bug-for-bug compatible with the API
// this service replaces.
// @Summary Show accounts by id
// @Description 404 when the id is unknown; otherwise the caller's scoped list
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {array} dto.AccountRead
// @Failure 404 {object} ProblemDetails
// @Router /accounts/{id} [get]
// @Security BearerAuth
func ShowAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := currentUser(c, authSvc)
		if caller == nil {
			return err
		}
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		accounts, err := accountSvc.Show(c.Context(), caller, id)
		if err != nil {
			status := ErrorToStatusCode(err)
			if status == fiber.StatusNotFound {
				return ErrorResponseJSON(c, status, "Account not found", nil)
			}
			log.Errorf("Failed to show account %d: %v", id, err)
			return ErrorResponseJSON(c, status, "Failed to show account", err.Error())
		}
		return c.JSON(dto.NewAccountReadList(accounts))
	}
}

// UpdateAccount applies a partial merge to an account.
// @Summary Update an account
// @Description Partial update; allowed for admins and the owner
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body dto.AccountUpdate true "Fields to change"
// @Success 200 {object} map[string]any
// @Failure 403 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /accounts/{id} [patch]
// @Security BearerAuth
func UpdateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := currentUser(c, authSvc)
		if caller == nil {
			return err
		}
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		input, err := BindAndValidate[dto.AccountUpdate](c)
		if input == nil {
			return err
		}
		account, err := accountSvc.Update(c.Context(), caller, id, input)
		if err != nil {
			switch status := ErrorToStatusCode(err); status {
			case fiber.StatusNotFound:
				return ErrorResponseJSON(c, status, "Account not found", nil)
			case fiber.StatusForbidden:
				return ErrorResponseJSON(c, status, "Access denied", nil)
			default:
				log.Errorf("Failed to update account %d: %v", id, err)
				return ErrorResponseJSON(c, status, "Failed to update account", err.Error())
			}
		}
		return c.JSON(fiber.Map{
			"message": "Account updated successfully!",
			"data":    dto.NewAccountRead(account),
		})
	}
}

// DestroyAccount permanently removes an account.
// @Summary Delete an account
// @Description Hard delete; allowed for admins and the owner
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /accounts/{id} [delete]
// @Security BearerAuth
func DestroyAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, err := currentUser(c, authSvc)
		if caller == nil {
			return err
		}
		id, err := parseAccountID(c)
		if id == 0 {
			return err
		}
		if err := accountSvc.Destroy(c.Context(), caller, id); err != nil {
			switch status := ErrorToStatusCode(err); status {
			case fiber.StatusNotFound:
				return ErrorResponseJSON(c, status, "Account not found", nil)
			case fiber.StatusForbidden:
				return ErrorResponseJSON(c, status, "Access denied", nil)
			default:
				log.Errorf("Failed to delete account %d: %v", id, err)
				return ErrorResponseJSON(c, status, "Failed to delete account", err.Error())
			}
		}
		return c.JSON(fiber.Map{"message": "Account deleted successfully!"})
	}
}
