package identity

// PasswordHash is the opaque output of the PasswordHasher port. The domain
// never derives it and knows nothing about the hashing algorithm.
type PasswordHash struct {
	value string
}

// NewPasswordHash rejects the empty string only; no algorithm-specific
// validation happens here.
func NewPasswordHash(raw string) (PasswordHash, error) {
	if raw == "" {
		return PasswordHash{}, ErrEmptyPasswordHash
	}
	return PasswordHash{value: raw}, nil
}

func (p PasswordHash) String() string { return p.value }

func (p PasswordHash) Equals(other PasswordHash) bool { return p.value == other.value }
