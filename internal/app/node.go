package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gitgeo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gitgeo/internal/adapters/geo"       //nolint:depguard // Wired in app layer
	"go.trai.ch/gitgeo/internal/adapters/githubapi" //nolint:depguard // Wired in app layer
	"go.trai.ch/gitgeo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gitgeo/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gitgeo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/gitgeo/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			githubapi.ListerNodeID,
			githubapi.FetcherNodeID,
			geo.NodeID,
			report.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	lister, err := graft.Dep[ports.ContributorLister](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[ports.LocationFetcher](ctx)
	if err != nil {
		return nil, err
	}

	countries, err := graft.Dep[ports.CountryResolver](ctx)
	if err != nil {
		return nil, err
	}

	reports, err := graft.Dep[ports.ReportWriter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, lister, fetcher, countries, reports, tracer, log), nil
}
