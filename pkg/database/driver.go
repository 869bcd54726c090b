package database

import (
	"fmt"
	"net/url"
)

const (
	SchemeMongo    = "mongodb"
	SchemePostgres = "postgres"
)

// DetectScheme maps a DATABASE_URL onto the driver that should serve it
func DetectScheme(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("database: invalid DATABASE_URL: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return SchemeMongo, nil
	case "postgres", "postgresql":
		return SchemePostgres, nil
	default:
		return "", fmt.Errorf("database: unsupported DATABASE_URL scheme %q", u.Scheme)
	}
}
