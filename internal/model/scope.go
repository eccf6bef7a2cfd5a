package model

// Environment names used to toggle server behavior.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the requesting user through use cases.
// Every repository query and mutation is filtered by OwnerID.
type Scope struct {
	OwnerID string
}
