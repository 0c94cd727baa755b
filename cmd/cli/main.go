// The fintrack-admin CLI is the only sanctioned path to the admin role:
// no HTTP endpoint can set or change a user's role.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/fintrackhq/fintrack/infra"
	infrarepo "github.com/fintrackhq/fintrack/infra/repository"
	"github.com/fintrackhq/fintrack/pkg/config"
	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/repository"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fail("Failed to load configuration:", err)
	}
	db, err := infra.NewDBConnection(cfg.DB)
	if err != nil {
		fail("Failed to connect to database:", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		fail("Failed to migrate database:", err)
	}
	uow := infrarepo.NewUoW(db)
	ctx := context.Background()

	switch cmd := os.Args[1]; cmd {
	case "create-admin":
		if len(os.Args) < 4 {
			fmt.Println("Usage: fintrack-admin create-admin <name> <email>")
			return
		}
		createAdmin(ctx, uow, os.Args[2], os.Args[3])
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: fintrack-admin promote <email>")
			return
		}
		setRole(ctx, uow, os.Args[2], domain.RoleAdmin)
	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: fintrack-admin demote <email>")
			return
		}
		setRole(ctx, uow, os.Args[2], domain.RoleUser)
	case "list-users":
		listUsers(ctx, uow)
	default:
		fmt.Println("Unknown command:", cmd)
		usage()
	}
}

func usage() {
	fmt.Println("Usage: fintrack-admin <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-admin <name> <email>   create a user with the admin role")
	fmt.Println("  promote <email>               grant the admin role")
	fmt.Println("  demote <email>                revert to the user role")
	fmt.Println("  list-users                    list all users")
}

func createAdmin(ctx context.Context, uow repository.UnitOfWork, name, email string) {
	password := promptPassword("Password: ")
	confirm := promptPassword("Confirm password: ")
	if password != confirm {
		fail("Passwords do not match", nil)
	}
	if len(password) < 6 {
		fail("Password must be at least 6 characters", nil)
	}

	admin, err := domain.NewAdmin(name, email, password)
	if err != nil {
		fail("Failed to hash password:", err)
	}
	err = uow.Do(ctx, func(uow repository.UnitOfWork) error {
		taken, err := uow.UserRepository().ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}
		return uow.UserRepository().Create(ctx, admin)
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		fail("A user with that email already exists", nil)
	}
	if err != nil {
		fail("Failed to create admin:", err)
	}
	color.Green("Admin %q created (id=%d)", email, admin.ID)
}

func setRole(ctx context.Context, uow repository.UnitOfWork, email string, role domain.Role) {
	user, err := uow.UserRepository().GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		fail("No user with email "+email, nil)
	}
	if err != nil {
		fail("Failed to look up user:", err)
	}
	if user.Role == role {
		color.Yellow("User %q already has role %s", email, role)
		return
	}
	if err := uow.UserRepository().UpdateRole(ctx, user.ID, role); err != nil {
		fail("Failed to update role:", err)
	}
	color.Green("User %q is now %s", email, role)
}

func listUsers(ctx context.Context, uow repository.UnitOfWork) {
	users, err := uow.UserRepository().List(ctx)
	if err != nil {
		fail("Failed to list users:", err)
	}
	bold := color.New(color.Bold)
	bold.Printf("%-6s %-30s %-30s %s\n", "ID", "NAME", "EMAIL", "ROLE")
	for _, u := range users {
		line := fmt.Sprintf("%-6d %-30s %-30s %s", u.ID, u.Name, u.Email, u.Role)
		if u.Role.IsAdmin() {
			color.Cyan(line)
		} else {
			fmt.Println(line)
		}
	}
}

func promptPassword(prompt string) string {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fail("Failed to read password:", err)
	}
	return string(raw)
}

func fail(msg string, err error) {
	if err != nil {
		color.Red("%s %v", msg, err)
	} else {
		color.Red("%s", msg)
	}
	os.Exit(1)
}
