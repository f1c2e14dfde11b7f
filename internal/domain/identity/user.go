package identity

import "github.com/shopkit/commerce-api/internal/domain/event"

// User is the aggregate root of the identity context. State is mutated only
// through its own operations; email and id never change after registration.
type User struct {
	id           int64
	email        Email
	passwordHash PasswordHash
	isActive     bool

	events []event.Event
}

// Register is the only public way to bring a new User into existence. The
// user starts active and records a UserRegistered event.
func Register(id int64, email Email, hash PasswordHash) *User {
	u := &User{
		id:           id,
		email:        email,
		passwordHash: hash,
		isActive:     true,
	}
	u.record(UserRegistered{UserID: id, Email: email.String()})
	return u
}

// Reconstruct restores a previously persisted User without recording events.
// Repository implementations call this; nothing else should.
func Reconstruct(id int64, email Email, hash PasswordHash, isActive bool) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: hash,
		isActive:     isActive,
	}
}

// Deactivate marks the user inactive. Deactivating twice is a no-op.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) ID() int64                  { return u.id }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() PasswordHash { return u.passwordHash }
func (u *User) IsActive() bool             { return u.isActive }

// PullEvents returns the events recorded since the last pull and clears the
// internal list. The caller owns delivery.
func (u *User) PullEvents() []event.Event {
	evs := u.events
	u.events = nil
	return evs
}

func (u *User) record(e event.Event) {
	u.events = append(u.events, e)
}
