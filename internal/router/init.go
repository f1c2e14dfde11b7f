package router

import (
	"github.com/shopkit/commerce-api/internal/application"
	"github.com/shopkit/commerce-api/internal/container"
	pginfra "github.com/shopkit/commerce-api/internal/infrastructure/postgres"
	"github.com/shopkit/commerce-api/internal/infrastructure/security"
	handlers "github.com/shopkit/commerce-api/internal/interface/http"
	"github.com/shopkit/commerce-api/internal/router/modules"
)

// Sequences backing aggregate id generation; created by the migrations.
const (
	userIDSequence  = "user_ids"
	orderIDSequence = "order_ids"
)

func buildAuthModule() *modules.AuthModule {
	users := pginfra.NewUserRepository(container.GetPGPool())
	hasher := security.NewBcryptHasher()
	ids := pginfra.NewSequenceIDGenerator(container.GetPGPool(), userIDSequence)

	register := application.NewRegisterUserHandler(users, hasher, ids, container.GetEventPublisher(), container.GetLogger())
	authenticate := application.NewAuthenticateUserHandler(users, hasher)

	handler := handlers.NewAuthHandler(register, authenticate, users, container.GetJWT(), container.GetRedis(), container.GetLogger())
	return modules.NewAuthModule(handler, container.GetJWT())
}

func buildOrderModule() *modules.OrderModule {
	orders := pginfra.NewOrderRepository(container.GetPGPool())
	ids := pginfra.NewSequenceIDGenerator(container.GetPGPool(), orderIDSequence)

	create := application.NewCreateOrderHandler(orders, ids, container.GetEventPublisher(), container.GetLogger())
	addItem := application.NewAddItemToOrderHandler(orders)
	confirm := application.NewConfirmOrderHandler(orders, container.GetEventPublisher(), container.GetLogger())
	get := application.NewGetOrderHandler(orders)

	handler := handlers.NewOrderHandler(create, addItem, confirm, get, container.GetLogger())
	return modules.NewOrderModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with
// the router registry. Call once during startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildOrderModule())
}
