// Command seed creates demo accounts and, optionally, random users and transfers
// so the analytics screens have data to show.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
	analyticsUseCase "github.com/paywise/paywise-api/internal/domain/usecase/analytics"
	authUseCase "github.com/paywise/paywise-api/internal/domain/usecase/auth"
	transferUseCase "github.com/paywise/paywise-api/internal/domain/usecase/transfer"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/cache"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/database"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/events"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/logger"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/repository"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/security"
	timeProvider "github.com/paywise/paywise-api/internal/infrastructure/adapter/time"
	"github.com/paywise/paywise-api/internal/infrastructure/config"
)

const demoPassword = "1234"

var demoUsers = []usecase.RegisterRequest{
	{Name: "Alice Smith", UpiID: "alice@ybl", Phone: "9876543210", Password: demoPassword},
	{Name: "Bob Johnson", UpiID: "bob@sbi", Phone: "8765432109", Password: demoPassword},
	{Name: "Charlie Brown", UpiID: "charlie@upi", Phone: "7654321098", Password: demoPassword},
}

var upiHandles = []string{"ybl", "sbi", "upi", "okaxis", "paytm"}

type account struct {
	id       string
	upiID    string
	password string
}

func main() {
	fakeUsers := flag.Int("users", 0, "number of random users to create next to the demo accounts")
	transfers := flag.Int("transfers", 0, "number of random transfers between seeded users")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewZapLogger(logger.Options{Level: cfg.Logger.Level, Service: "paywise-seed"})
	defer func() { _ = appLogger.Flush() }()

	if err := run(context.Background(), cfg, appLogger, *fakeUsers, *transfers, *seed); err != nil {
		appLogger.Error("Seeding failed", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, fakeUsers, transfers int, seed int64) error {
	gofakeit.Seed(seed)
	tp := timeProvider.NewRealTimeProvider()

	openingBalance, err := entity.ParseAmount(cfg.Auth.OpeningBalance)
	if err != nil {
		return fmt.Errorf("invalid auth.openingBalance: %w", err)
	}

	dbManager := database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx); err != nil {
		return err
	}

	tokens, err := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return err
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	ids := security.NewUUIDGenerator()
	publisher := events.NewNoopPublisher()
	uow := dbManager.CreateUnitOfWork()

	auth := authUseCase.NewService(repository.NewUserRepository(dbManager.DB(), appLogger), hasher, tokens, ids, publisher, tp, appLogger, openingBalance)
	analytics := analyticsUseCase.NewService(uow, cache.NewNoopCache(), appLogger)
	transfer := transferUseCase.NewService(uow, hasher, ids, publisher, analytics, tp, appLogger)

	accounts := make([]account, 0, len(demoUsers)+fakeUsers)
	for _, req := range demoUsers {
		acc, err := ensureAccount(ctx, auth, req)
		if err != nil {
			return err
		}
		accounts = append(accounts, acc)
	}
	generated, err := registerGenerated(ctx, auth, fakeUsers, fakeUser, appLogger)
	if err != nil {
		return err
	}
	accounts = append(accounts, generated...)
	appLogger.Info("Users seeded", map[string]any{"count": len(accounts)})

	if transfers > 0 && len(accounts) > 1 {
		done := seedTransfers(ctx, transfer, accounts, transfers, appLogger)
		appLogger.Info("Transfers seeded", map[string]any{"requested": transfers, "completed": done})
	}
	return nil
}

// ensureAccount registers a demo user, or logs in with its fixed password when
// an earlier run already created it
func ensureAccount(ctx context.Context, auth usecase.AuthUseCase, req usecase.RegisterRequest) (account, error) {
	result, err := auth.Register(ctx, req)
	if errors.Is(err, errs.ErrDuplicateUpiID) {
		result, err = auth.Login(ctx, req.UpiID, req.Password)
	}
	if err != nil {
		return account{}, fmt.Errorf("seed user %s: %w", req.UpiID, err)
	}
	return account{id: result.User.ID, upiID: result.User.UpiID, password: req.Password}, nil
}

// registerGenerated registers n generated users. A generated user whose UPI ID
// or phone number is already taken is skipped, since its random password cannot
// be recovered on a later run.
func registerGenerated(
	ctx context.Context,
	auth usecase.AuthUseCase,
	n int,
	generate func() usecase.RegisterRequest,
	appLogger coreport.Logger,
) ([]account, error) {
	accounts := make([]account, 0, n)
	for i := 0; i < n; i++ {
		req := generate()
		result, err := auth.Register(ctx, req)
		if errors.Is(err, errs.ErrDuplicateUpiID) || errors.Is(err, errs.ErrDuplicatePhone) {
			appLogger.Warn("Skipping generated user", map[string]any{"upiId": req.UpiID, "error": err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", req.UpiID, err)
		}
		accounts = append(accounts, account{id: result.User.ID, upiID: result.User.UpiID, password: req.Password})
	}
	return accounts, nil
}

func fakeUser() usecase.RegisterRequest {
	handle := strings.ToLower(gofakeit.Username())
	return usecase.RegisterRequest{
		Name:     gofakeit.Name(),
		UpiID:    fmt.Sprintf("%s%d@%s", handle, gofakeit.Number(10, 99), gofakeit.RandomString(upiHandles)),
		Phone:    gofakeit.Phone(),
		Password: gofakeit.Password(true, true, true, false, false, 8),
	}
}

// seedTransfers sends small random amounts between random pairs. Rejected
// transfers (for example insufficient funds) are logged and skipped.
func seedTransfers(ctx context.Context, transfer usecase.TransferUseCase, accounts []account, n int, appLogger coreport.Logger) int {
	categories := append(entity.PredefinedCategoryNames(), "Travel", "Gifts")
	done := 0
	for i := 0; i < n; i++ {
		from := accounts[gofakeit.Number(0, len(accounts)-1)]
		to := accounts[gofakeit.Number(0, len(accounts)-1)]
		if from.id == to.id {
			continue
		}

		_, err := transfer.Send(ctx, from.id, usecase.TransferRequest{
			SenderID:           from.id,
			ReceiverIdentifier: to.upiID,
			Amount:             fmt.Sprintf("%.2f", gofakeit.Price(1, 500)),
			Password:           from.password,
			Category:           gofakeit.RandomString(categories),
		})
		if err != nil {
			appLogger.Warn("Seed transfer rejected", map[string]any{
				"from":  from.upiID,
				"to":    to.upiID,
				"error": err.Error(),
			})
			continue
		}
		done++
	}
	return done
}
