package identity

// UserRegistered is recorded when a new user completes registration.
type UserRegistered struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

func (UserRegistered) EventName() string { return "identity.user_registered" }
