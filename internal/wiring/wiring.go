// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gitgeo/internal/adapters/config"
	_ "go.trai.ch/gitgeo/internal/adapters/geo"
	_ "go.trai.ch/gitgeo/internal/adapters/githubapi"
	_ "go.trai.ch/gitgeo/internal/adapters/logger"
	_ "go.trai.ch/gitgeo/internal/adapters/report"
	_ "go.trai.ch/gitgeo/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/gitgeo/internal/app"
)
