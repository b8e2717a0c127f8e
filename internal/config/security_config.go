package config

const (
	sessionSecretEnvVar = "SESSION_SECRET"

	// DefaultSessionSecret is the insecure fallback used when SESSION_SECRET
	// is unset. Deployments must override it; main logs a warning otherwise.
	DefaultSessionSecret = "noteflux-change-this-secret"
)

type SecurityConfig interface {
	GetSessionSecret() string
	UsingDefaultSessionSecret() bool
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetSessionSecret() string {
	return GetEnv(sessionSecretEnvVar, DefaultSessionSecret)
}

func (Security) UsingDefaultSessionSecret() bool {
	return GetEnv(sessionSecretEnvVar, DefaultSessionSecret) == DefaultSessionSecret
}
