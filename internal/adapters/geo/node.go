package geo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gitgeo/internal/core/ports"
)

// NodeID is the unique identifier for the country resolver Graft node.
const NodeID graft.ID = "adapter.country_resolver"

func init() {
	graft.Register(graft.Node[ports.CountryResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CountryResolver, error) {
			resolver, err := NewResolver()
			if err != nil {
				return nil, err
			}
			return resolver, nil
		},
	})
}
