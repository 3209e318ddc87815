package ports

import "go.trai.ch/gitgeo/internal/core/domain"

// CountryResolver maps a location to a country name.
//
//go:generate mockgen -source=country.go -destination=mocks/mock_country.go -package=mocks
type CountryResolver interface {
	// ResolveCountry never fails: unknown or absent locations map to
	// domain.UnknownCountry.
	ResolveCountry(loc domain.Location) string
}
