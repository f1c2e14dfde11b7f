package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/commerce-api/internal/domain/event"
	"github.com/shopkit/commerce-api/internal/domain/identity"
	"github.com/shopkit/commerce-api/internal/domain/order"
)

// ---- in-memory fakes ----

type fakeUserRepo struct {
	users   map[int64]*identity.User
	saveErr error
	findErr error
	saves   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*identity.User{}}
}

func (r *fakeUserRepo) Save(ctx context.Context, u *identity.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email identity.Email) (*identity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email().Equals(email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	return r.users[id], nil
}

type fakeOrderRepo struct {
	orders  map[int64]*order.Order
	saveErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*order.Order{}}
}

func (r *fakeOrderRepo) Save(ctx context.Context, o *order.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.orders[o.ID()] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	return r.orders[id], nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(plain, hash string) bool    { return hash == "hashed:"+plain }

type seqIDs struct{ next int64 }

func (s *seqIDs) NextID(ctx context.Context) (int64, error) {
	s.next++
	return s.next, nil
}

type capturingPublisher struct {
	published []event.Event
	err       error
}

func (p *capturingPublisher) Publish(ctx context.Context, events []event.Event) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, events...)
	return nil
}

// ---- RegisterUser ----

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	pub := &capturingPublisher{}
	h := NewRegisterUserHandler(repo, fakeHasher{}, &seqIDs{}, pub, nil)

	res, err := h.Handle(context.Background(), RegisterUserCommand{
		Email:         "  New.User@Example.COM ",
		PlainPassword: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UserID)
	assert.Equal(t, "new.user@example.com", res.Email)

	saved := repo.users[1]
	require.NotNil(t, saved)
	assert.True(t, saved.IsActive())
	assert.Equal(t, "hashed:password123", saved.PasswordHash().String())

	require.Len(t, pub.published, 1)
	reg, ok := pub.published[0].(identity.UserRegistered)
	require.True(t, ok)
	assert.Equal(t, int64(1), reg.UserID)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewRegisterUserHandler(repo, fakeHasher{}, &seqIDs{}, nil, nil)

	_, err := h.Handle(context.Background(), RegisterUserCommand{Email: "dup@example.com", PlainPassword: "pw"})
	require.NoError(t, err)

	_, err = h.Handle(context.Background(), RegisterUserCommand{Email: "DUP@example.com", PlainPassword: "pw"})
	assert.ErrorIs(t, err, identity.ErrUserAlreadyExists)
	assert.Equal(t, 1, repo.saves, "duplicate registration must not save")
}

func TestRegisterUserInvalidEmail(t *testing.T) {
	h := NewRegisterUserHandler(newFakeUserRepo(), fakeHasher{}, &seqIDs{}, nil, nil)

	_, err := h.Handle(context.Background(), RegisterUserCommand{Email: "not-an-email", PlainPassword: "pw"})
	assert.ErrorIs(t, err, identity.ErrInvalidEmail)
}

func TestRegisterUserPublishFailureIsNonFatal(t *testing.T) {
	repo := newFakeUserRepo()
	pub := &capturingPublisher{err: errors.New("broker down")}
	h := NewRegisterUserHandler(repo, fakeHasher{}, &seqIDs{}, pub, nil)

	res, err := h.Handle(context.Background(), RegisterUserCommand{Email: "a@example.com", PlainPassword: "pw"})
	require.NoError(t, err)
	assert.NotNil(t, repo.users[res.UserID])
}

func TestRegisterUserRepoErrorPropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("db down")
	h := NewRegisterUserHandler(repo, fakeHasher{}, &seqIDs{}, nil, nil)

	_, err := h.Handle(context.Background(), RegisterUserCommand{Email: "a@example.com", PlainPassword: "pw"})
	assert.EqualError(t, err, "db down")
}

// ---- AuthenticateUser ----

func registerTestUser(t *testing.T, repo *fakeUserRepo, email, password string) int64 {
	t.Helper()
	h := NewRegisterUserHandler(repo, fakeHasher{}, &seqIDs{next: 100}, nil, nil)
	res, err := h.Handle(context.Background(), RegisterUserCommand{Email: email, PlainPassword: password})
	require.NoError(t, err)
	return res.UserID
}

func TestAuthenticateUser(t *testing.T) {
	repo := newFakeUserRepo()
	id := registerTestUser(t, repo, "login@example.com", "secret")
	h := NewAuthenticateUserHandler(repo, fakeHasher{})

	res, err := h.Handle(context.Background(), AuthenticateUserCommand{Email: "Login@Example.com", PlainPassword: "secret"})
	require.NoError(t, err)
	assert.Equal(t, id, res.UserID)
}

func TestAuthenticateUserWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	registerTestUser(t, repo, "login@example.com", "secret")
	h := NewAuthenticateUserHandler(repo, fakeHasher{})

	_, err := h.Handle(context.Background(), AuthenticateUserCommand{Email: "login@example.com", PlainPassword: "wrong"})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestAuthenticateUserUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	registerTestUser(t, repo, "login@example.com", "secret")
	h := NewAuthenticateUserHandler(repo, fakeHasher{})

	// unknown account and wrong password yield the same error
	_, err := h.Handle(context.Background(), AuthenticateUserCommand{Email: "other@example.com", PlainPassword: "secret"})
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestAuthenticateUserMalformedEmail(t *testing.T) {
	h := NewAuthenticateUserHandler(newFakeUserRepo(), fakeHasher{})

	_, err := h.Handle(context.Background(), AuthenticateUserCommand{Email: "nope", PlainPassword: "secret"})
	assert.ErrorIs(t, err, identity.ErrInvalidEmail)
}

// ---- Orders ----

func TestCreateOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	pub := &capturingPublisher{}
	h := NewCreateOrderHandler(repo, &seqIDs{}, pub, nil)

	res, err := h.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.OrderID)
	assert.Equal(t, "DRAFT", res.Status)
	assert.Equal(t, 0, res.ItemCount)
	assert.Equal(t, int64(0), res.TotalAmount)

	require.Len(t, pub.published, 1)
	created, ok := pub.published[0].(order.OrderCreated)
	require.True(t, ok)
	assert.Equal(t, int64(7), created.UserID)
}

func TestAddItemToOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	addItem := NewAddItemToOrderHandler(repo)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)

	res, err := addItem.Handle(context.Background(), AddItemToOrderCommand{
		OrderID: created.OrderID, ProductID: 101, Quantity: 2, UnitPrice: 2999,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ItemCount)
	assert.Equal(t, int64(5998), res.TotalAmount)

	res, err = addItem.Handle(context.Background(), AddItemToOrderCommand{
		OrderID: created.OrderID, ProductID: 102, Quantity: 1, UnitPrice: 1250,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ItemCount)
	assert.Equal(t, int64(7248), res.TotalAmount)
}

func TestAddItemToMissingOrder(t *testing.T) {
	h := NewAddItemToOrderHandler(newFakeOrderRepo())

	_, err := h.Handle(context.Background(), AddItemToOrderCommand{OrderID: 99, ProductID: 1, Quantity: 1, UnitPrice: 1})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestAddItemInvalidValues(t *testing.T) {
	repo := newFakeOrderRepo()
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	addItem := NewAddItemToOrderHandler(repo)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)

	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 1, Quantity: 0, UnitPrice: 100})
	assert.ErrorIs(t, err, order.ErrInvalidQuantity)

	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 1, Quantity: 1, UnitPrice: -5})
	assert.ErrorIs(t, err, order.ErrInvalidUnitPrice)

	// failed appends leave the order untouched
	got, err := NewGetOrderHandler(repo).Handle(context.Background(), GetOrderQuery{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestConfirmOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	pub := &capturingPublisher{}
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	addItem := NewAddItemToOrderHandler(repo)
	confirm := NewConfirmOrderHandler(repo, pub, nil)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)
	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 101, Quantity: 2, UnitPrice: 2999})
	require.NoError(t, err)

	res, err := confirm.Handle(context.Background(), ConfirmOrderCommand{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", res.Status)
	assert.Equal(t, int64(5998), res.TotalAmount)

	require.Len(t, pub.published, 1)
	_, ok := pub.published[0].(order.OrderConfirmed)
	assert.True(t, ok)
}

func TestConfirmEmptyOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	confirm := NewConfirmOrderHandler(repo, nil, nil)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)

	_, err = confirm.Handle(context.Background(), ConfirmOrderCommand{OrderID: created.OrderID})
	assert.ErrorIs(t, err, order.ErrEmptyOrder)
}

func TestConfirmMissingOrder(t *testing.T) {
	confirm := NewConfirmOrderHandler(newFakeOrderRepo(), nil, nil)

	_, err := confirm.Handle(context.Background(), ConfirmOrderCommand{OrderID: 404})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestConfirmOrderTwice(t *testing.T) {
	repo := newFakeOrderRepo()
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	addItem := NewAddItemToOrderHandler(repo)
	confirm := NewConfirmOrderHandler(repo, nil, nil)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)
	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 1, Quantity: 1, UnitPrice: 100})
	require.NoError(t, err)
	_, err = confirm.Handle(context.Background(), ConfirmOrderCommand{OrderID: created.OrderID})
	require.NoError(t, err)

	_, err = confirm.Handle(context.Background(), ConfirmOrderCommand{OrderID: created.OrderID})
	assert.ErrorIs(t, err, order.ErrStatusConflict)
}

func TestAddItemToConfirmedOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	addItem := NewAddItemToOrderHandler(repo)
	confirm := NewConfirmOrderHandler(repo, nil, nil)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)
	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 1, Quantity: 1, UnitPrice: 100})
	require.NoError(t, err)
	_, err = confirm.Handle(context.Background(), ConfirmOrderCommand{OrderID: created.OrderID})
	require.NoError(t, err)

	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 2, Quantity: 1, UnitPrice: 100})
	assert.ErrorIs(t, err, order.ErrStatusConflict)
}

func TestGetOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	create := NewCreateOrderHandler(repo, &seqIDs{}, nil, nil)
	addItem := NewAddItemToOrderHandler(repo)
	get := NewGetOrderHandler(repo)

	created, err := create.Handle(context.Background(), CreateOrderCommand{UserID: 7})
	require.NoError(t, err)
	_, err = addItem.Handle(context.Background(), AddItemToOrderCommand{OrderID: created.OrderID, ProductID: 101, Quantity: 2, UnitPrice: 2999})
	require.NoError(t, err)

	res, err := get.Handle(context.Background(), GetOrderQuery{OrderID: created.OrderID})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, "DRAFT", res.Status)
	require.Len(t, res.Items, 1)
	assert.Equal(t, int64(101), res.Items[0].ProductID)
	assert.Equal(t, int64(5998), res.Items[0].Total)
	assert.Equal(t, int64(5998), res.TotalAmount)
}

func TestGetMissingOrder(t *testing.T) {
	get := NewGetOrderHandler(newFakeOrderRepo())

	_, err := get.Handle(context.Background(), GetOrderQuery{OrderID: 1})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
