package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_generator_mock.go -package=mock

// SecretGenerator produces random secrets for new or edited records.
type SecretGenerator interface {
	// Generate returns a SecretLength-character secret containing at least
	// one lowercase letter, one uppercase letter, one digit and one symbol.
	// It fails only when the randomness source fails.
	Generate() (string, error)
}
