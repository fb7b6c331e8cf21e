package ftpsession

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	envUsername = "FTPSESSION_USERNAME"
	envPassword = "FTPSESSION_PASSWORD"

	defaultUsername = "anonymous"
	defaultPassword = "anonymous"
	defaultScheme   = "ftp"

	// DefaultPort is used by Connector.Connect when port is 0.
	DefaultPort = 21
	// DefaultTimeout is used by Connector.Connect when timeout is 0.
	DefaultTimeout = 90 * time.Second
)

// validate use a single instance of validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// Options holds connector settings that can be expressed as plain values.
type Options struct {
	// StagingDir is where Put/Get stage their temporary files. Empty means the OS temp dir.
	StagingDir string `json:"stagingDir,omitempty" yaml:"stagingDir,omitempty"`

	// MaxRetries is the number of additional dial attempts made by Connect. Protocol operations
	// are never retried.
	MaxRetries int `json:"maxRetries,omitempty" yaml:"maxRetries,omitempty" validate:"min=0,max=100"`

	// RetryDelay is the base delay between dial attempts.
	RetryDelay time.Duration `json:"retryDelay,omitempty" yaml:"retryDelay,omitempty" validate:"min=0"`
}

// NewAuthenticationFromEnv returns an Authentication resolved in this order of precedence: explicit argument,
// env var (FTPSESSION_USERNAME / FTPSESSION_PASSWORD), then "anonymous".
func NewAuthenticationFromEnv(username, password string) *Authentication {
	return NewAuthentication(fetchUsername(username), fetchPassword(password))
}

func fetchUsername(username string) string {
	if username != "" {
		return username
	}
	if user := os.Getenv(envUsername); user != "" {
		return user
	}
	return defaultUsername
}

func fetchPassword(password string) string {
	if password != "" {
		return password
	}
	// an env var set to "" is an explicit empty password
	if pass, ok := os.LookupEnv(envPassword); ok {
		return pass
	}
	return defaultPassword
}
