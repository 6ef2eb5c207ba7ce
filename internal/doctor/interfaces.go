package doctor

import (
	"context"

	"github.com/MKhiriev/envresolve/internal/adapter"
	"github.com/MKhiriev/envresolve/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/doctor_mock.go -package=mock

// DatabaseProber connects to the database service as the web process would.
// *store.DB satisfies it.
type DatabaseProber interface {
	// Ping verifies the server accepts the configured credentials.
	Ping(ctx context.Context) error

	// Identify returns the user and database the server reports for the
	// connection.
	Identify(ctx context.Context) (store.Session, error)
}

// DatabaseCatalog reports which databases exist on the server. A *store.DB
// connected to a maintenance database satisfies it.
type DatabaseCatalog interface {
	DatabaseExists(ctx context.Context, name string) (bool, error)
}

// WebProber checks that the web process answers on its base URL.
// *adapter.WebProbe satisfies it.
type WebProber interface {
	Probe(ctx context.Context) (adapter.Status, error)
}
