package ports

import (
	"context"

	"go.trai.ch/gitgeo/internal/core/domain"
)

// ContributorLister lists the contributors of a hosted repository.
//
//go:generate mockgen -source=github.go -destination=mocks/mock_github.go -package=mocks
type ContributorLister interface {
	// ListContributors returns up to limit contributors of ref, in the order
	// the hosting service reports them. Failures wrap domain.ErrFetchFailed.
	ListContributors(ctx context.Context, ref domain.RepositoryRef, limit int) ([]domain.ContributorRef, error)
}

// LocationFetcher looks up the self-reported location of a contributor.
type LocationFetcher interface {
	// FetchLocation returns the contributor's profile location, or
	// domain.NoLocation when the profile declares none. Failures wrap
	// domain.ErrFetchFailed.
	FetchLocation(ctx context.Context, contributor domain.ContributorRef) (domain.Location, error)
}
