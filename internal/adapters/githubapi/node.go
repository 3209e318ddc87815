package githubapi

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gitgeo/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the GitHub client Graft node.
	NodeID graft.ID = "adapter.github_client"
	// ListerNodeID is the unique identifier for the contributor lister Graft node.
	ListerNodeID graft.ID = "adapter.contributor_lister"
	// FetcherNodeID is the unique identifier for the location fetcher Graft node.
	FetcherNodeID graft.ID = "adapter.location_fetcher"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Client, error) {
			return NewClientFromEnv()
		},
	})

	graft.Register(graft.Node[ports.ContributorLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.ContributorLister, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})

	graft.Register(graft.Node[ports.LocationFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.LocationFetcher, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}
