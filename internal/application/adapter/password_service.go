package adapter

// PasswordService hashes and verifies resident passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with its hash and
	// returns an error on mismatch.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum length.
	ValidatePasswordStrength(password string) error
}
