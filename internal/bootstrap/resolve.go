package bootstrap

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/envresolve/internal/config"
)

func resolveDatabase(set *config.Set) (Database, error) {
	user, errUser := set.Require(config.KeyPostgresUser)
	password, errPassword := set.Require(config.KeyPostgresPassword)
	name, errName := set.Require(config.KeyPostgresDB)

	if err := errors.Join(errUser, errPassword, errName); err != nil {
		return Database{}, err
	}

	return Database{User: user, Password: password, Name: name}, nil
}

func resolveWeb(set *config.Set) (Web, error) {
	dbURL, errDB := set.RequireDatabaseURL(config.KeyDatabaseURL)
	baseURL, errBase := set.RequireURL(config.KeyBaseURL)
	secretKey, errSecret := set.Require(config.KeySecretKey)

	if err := errors.Join(errDB, errBase, errSecret); err != nil {
		return Web{}, err
	}

	return Web{DatabaseURL: dbURL, BaseURL: baseURL, SecretKey: secretKey}, nil
}

func resolveWorkers(set *config.Set) (Workers, error) {
	n, err := set.PositiveIntOr(config.KeyCeleryConcurrency, DefaultConcurrency)
	if err != nil {
		return Workers{}, err
	}

	return Workers{Concurrency: n}, nil
}

func resolveMonitoring(set *config.Set) (Monitoring, error) {
	flower, errFlower := set.RequireBasicAuth(config.KeyFlowerBasicAuth)
	redmon, errRedmon := set.RequireBasicAuth(config.KeyRedmonBasicAuth)

	if err := errors.Join(errFlower, errRedmon); err != nil {
		return Monitoring{}, err
	}

	return Monitoring{Flower: flower, Redmon: redmon}, nil
}

// crossCheck compares the database service credentials with the ones the
// web process connects with.
func crossCheck(b *Bundle) []string {
	var warnings []string
	u := b.Web.DatabaseURL
	if u == nil {
		return nil
	}

	if u.User != b.Database.User {
		warnings = append(warnings, fmt.Sprintf("%s user %q differs from %s %q",
			config.KeyDatabaseURL, u.User, config.KeyPostgresUser, b.Database.User))
	}
	if u.Password != b.Database.Password {
		warnings = append(warnings, fmt.Sprintf("%s password differs from %s",
			config.KeyDatabaseURL, config.KeyPostgresPassword))
	}
	if u.Path != b.Database.Name {
		warnings = append(warnings, fmt.Sprintf("%s database %q differs from %s %q",
			config.KeyDatabaseURL, u.Path, config.KeyPostgresDB, b.Database.Name))
	}

	return warnings
}
