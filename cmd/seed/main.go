package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/shopkit/commerce-api/config"
	"github.com/shopkit/commerce-api/internal/domain/identity"
	"github.com/shopkit/commerce-api/internal/domain/order"
	pginfra "github.com/shopkit/commerce-api/internal/infrastructure/postgres"
	"github.com/shopkit/commerce-api/pkg/helpers"
)

// Seeds a demo user with a draft and a confirmed order. Everything goes
// through the domain factories and the postgres adapters, so the seeded
// rows look exactly like rows the API would write.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	orders := pginfra.NewOrderRepository(pool)
	userIDs := pginfra.NewSequenceIDGenerator(pool, "user_ids")
	orderIDs := pginfra.NewSequenceIDGenerator(pool, "order_ids")

	email, err := identity.NewEmail("test@example.com")
	if err != nil {
		log.Fatalf("seed email invalid: %v", err)
	}

	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		log.Fatalf("failed to check seed user: %v", err)
	}

	var userID int64
	if existing != nil {
		userID = existing.ID()
		fmt.Printf("seed user already present: id=%d email=%s\n", userID, email)
	} else {
		userID, err = userIDs.NextID(ctx)
		if err != nil {
			log.Fatalf("failed to allocate user id: %v", err)
		}
		hashed, err := helpers.HashPassword("password")
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		hash, err := identity.NewPasswordHash(hashed)
		if err != nil {
			log.Fatalf("seed hash invalid: %v", err)
		}
		u := identity.Register(userID, email, hash)
		if err := users.Save(ctx, u); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
		u.PullEvents() // nothing consumes events during seeding
		fmt.Printf("seeded user: id=%d email=%s password=password\n", userID, email)
	}

	draftID := seedOrder(ctx, orders, orderIDs, userID, false, []orderLine{
		{productID: 101, quantity: 2, unitPrice: 2999},
		{productID: 102, quantity: 1, unitPrice: 1250},
	})
	fmt.Printf("seeded draft order: id=%d\n", draftID)

	confirmedID := seedOrder(ctx, orders, orderIDs, userID, true, []orderLine{
		{productID: 103, quantity: 3, unitPrice: 999},
		{productID: 104, quantity: 1, unitPrice: 4999},
		{productID: 105, quantity: 2, unitPrice: 1500},
	})
	fmt.Printf("seeded confirmed order: id=%d\n", confirmedID)
}

type orderLine struct {
	productID int64
	quantity  int64
	unitPrice int64
}

func seedOrder(ctx context.Context, orders *pginfra.OrderRepository, ids *pginfra.SequenceIDGenerator, userID int64, confirm bool, lines []orderLine) int64 {
	id, err := ids.NextID(ctx)
	if err != nil {
		log.Fatalf("failed to allocate order id: %v", err)
	}
	o := order.Create(id, userID)
	for _, l := range lines {
		item, err := order.NewItem(l.productID, l.quantity, l.unitPrice)
		if err != nil {
			log.Fatalf("seed item invalid: %v", err)
		}
		if err := o.AddItem(item); err != nil {
			log.Fatalf("failed to add seed item: %v", err)
		}
	}
	if confirm {
		if err := o.Confirm(); err != nil {
			log.Fatalf("failed to confirm seed order: %v", err)
		}
	}
	if err := orders.Save(ctx, o); err != nil {
		log.Fatalf("failed to seed order: %v", err)
	}
	o.PullEvents()
	return id
}
