package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps common spellings ("prod", "stage", "dev", any case) to an
// Environment. Unknown or empty values resolve to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool  { return Parse(string(e)) == Production }
func (e Environment) IsStaging() bool     { return Parse(string(e)) == Staging }
func (e Environment) IsDevelopment() bool { return Parse(string(e)) == Development }

// UnmarshalText lets config loaders decode environment variables directly.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}
