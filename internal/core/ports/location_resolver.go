package ports

import (
	"fulfilment/internal/core/domain/model/location"
)

// LocationResolver resolves location identifiers against the static registry
// of known physical sites. Resolve is a pure lookup: it never fails, it
// reports absence through the boolean instead. Matching is case-sensitive
// and an empty identifier is simply absent.
type LocationResolver interface {
	Resolve(identifier string) (location.Location, bool)
}
