package entities

import "fmt"

const (
	// AuthMethodToken authenticates with a personal access or OAuth token held in Login.
	AuthMethodToken = "token"
	// AuthMethodBasic authenticates with a username (Login) and password (Secret).
	AuthMethodBasic = "basic"
)

// Credentials is the authentication tuple handed to the hosting client.
// The zero value means anonymous access.
type Credentials struct {
	Method string `yaml:"method"`
	Login  string `yaml:"login"`
	Secret string `yaml:"secret"`
}

// TokenCredentials builds token credentials.
func TokenCredentials(token string) Credentials {
	return Credentials{Method: AuthMethodToken, Login: token}
}

// IsEmpty reports whether no credentials were supplied.
func (c Credentials) IsEmpty() bool {
	return c.Method == "" && c.Login == "" && c.Secret == ""
}

// Validate checks that the method is known and carries the fields it needs.
func (c Credentials) Validate() error {
	if c.IsEmpty() {
		return nil
	}

	switch c.Method {
	case AuthMethodToken:
		if c.Login == "" {
			return fmt.Errorf("%w: token credentials require a token in \"login\"", ErrInvalidArgument)
		}
	case AuthMethodBasic:
		if c.Login == "" || c.Secret == "" {
			return fmt.Errorf("%w: basic credentials require both \"login\" and \"secret\"", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown credentials method %q", ErrInvalidArgument, c.Method)
	}
	return nil
}

// Committer identifies the author recorded on commits created by write operations.
type Committer struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// IsEmpty reports whether neither name nor email is set.
func (c Committer) IsEmpty() bool {
	return c.Name == "" && c.Email == ""
}
