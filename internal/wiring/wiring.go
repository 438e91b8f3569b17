// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dcell/internal/adapters/cas"
	_ "go.trai.ch/dcell/internal/adapters/cc"
	_ "go.trai.ch/dcell/internal/adapters/config"
	_ "go.trai.ch/dcell/internal/adapters/dub"
	_ "go.trai.ch/dcell/internal/adapters/fs"
	_ "go.trai.ch/dcell/internal/adapters/logger"
	_ "go.trai.ch/dcell/internal/adapters/magic"
	_ "go.trai.ch/dcell/internal/adapters/python"
	_ "go.trai.ch/dcell/internal/adapters/shell"
	_ "go.trai.ch/dcell/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/dcell/internal/app"
	_ "go.trai.ch/dcell/internal/engine/pipeline"
)
