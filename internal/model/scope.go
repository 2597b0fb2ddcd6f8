package model

// Scope carries the per-call user identity. It is built at the delivery layer
// and passed down to usecases; it never outlives a single request.
type Scope struct {
	UserID   string
	Username string
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
