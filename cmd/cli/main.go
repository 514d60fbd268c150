// Command cli is the operator tool: it creates and verifies users and
// inspects ledger rows directly against the database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/msaleh83/investo/infra"
	infrarepo "github.com/msaleh83/investo/infra/repository"
	"github.com/msaleh83/investo/pkg/config"
	usersvc "github.com/msaleh83/investo/pkg/service/user"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <email> <first-name> <last-name>   prompts for a password")
	fmt.Println("  verify-user <user-id>")
	fmt.Println("  get-transaction <transaction-id>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB.Url)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	uow := infrarepo.NewUoW(db)
	users := usersvc.New(uow, logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "create-user":
		if len(os.Args) < 5 {
			usage()
			os.Exit(1)
		}
		email, firstName, lastName := os.Args[2], os.Args[3], os.Args[4]
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			color.Red("Failed to read password: %v", err)
			os.Exit(1)
		}
		u, err := users.Create(ctx, email, string(password), firstName, lastName)
		if err != nil {
			color.Red("Failed to create user: %v", err)
			os.Exit(1)
		}
		color.Green("Created user %s (%s)", u.ID, u.Email)

	case "verify-user":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid user id: %v", err)
			os.Exit(1)
		}
		u, err := users.Verify(ctx, id)
		if err != nil {
			color.Red("Failed to verify user: %v", err)
			os.Exit(1)
		}
		color.Green("Verified user %s (%s)", u.ID, u.Email)

	case "get-transaction":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		id, err := uuid.Parse(os.Args[2])
		if err != nil {
			color.Red("Invalid transaction id: %v", err)
			os.Exit(1)
		}
		trx, err := uow.TransactionRepository().Get(ctx, id)
		if err != nil {
			color.Red("Failed to load transaction: %v", err)
			os.Exit(1)
		}
		fmt.Printf("Transaction %s\n", trx.ID)
		fmt.Printf("  user:      %s\n", trx.UserID)
		fmt.Printf("  amount:    %.2f %s (%.2f USD)\n", trx.OriginalAmount, trx.Currency, trx.ConvertedAmount)
		fmt.Printf("  roi:       %.2f%%  projected %.2f\n", trx.ROIPercentage, trx.ProjectedValue())
		fmt.Printf("  maturity:  %s\n", trx.MaturityDate.Format("2006-01-02"))
		switch trx.Status {
		case "COMPLETED":
			color.Green("  status:    %s", trx.Status)
		case "FAILED":
			color.Red("  status:    %s", trx.Status)
		default:
			color.Yellow("  status:    %s", trx.Status)
		}
		if trx.Payment != nil {
			fmt.Printf("  payment:   %s via %s after %d attempt(s)\n",
				trx.Payment.PaymentID, trx.Payment.Provider, trx.Payment.Attempts)
		}

	default:
		usage()
		os.Exit(1)
	}
}
