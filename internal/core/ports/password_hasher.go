package ports

// PasswordHasher derives a deterministic, keyed hash from a plaintext password.
type PasswordHasher interface {
	Hash(plaintext string) string
}
