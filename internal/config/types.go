package config

import "fmt"

const (
	// application identity reported by the info endpoints
	AppName     = "Jenkins CI/CD App"
	ServiceName = "jenkins-cicd-app"
	Version     = "1.0.0"

	DefaultPort        = 5000
	DefaultEnvironment = "development"
)

type Config struct {
	Port        int
	Environment string
}

// returns the listen address, bound to all interfaces
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
