// Command symbolkit converts directories of SVG files into a JSON
// symbol library and provides tooling to inspect the result.
package main

import (
	"os"

	configfile "github.com/flagforge/symbolkit/internal/adapters/driven/config/file"
	"github.com/flagforge/symbolkit/internal/adapters/driven/storage/jsonfile"
	"github.com/flagforge/symbolkit/internal/adapters/driven/storage/sqlite"
	"github.com/flagforge/symbolkit/internal/adapters/driving/cli"
	"github.com/flagforge/symbolkit/internal/connectors/filesystem"
	"github.com/flagforge/symbolkit/internal/core/ports/driven"
	"github.com/flagforge/symbolkit/internal/core/services"
	"github.com/flagforge/symbolkit/internal/logger"
	"github.com/flagforge/symbolkit/internal/normalisers/svg"
	"github.com/flagforge/symbolkit/internal/postprocessors"
)

// version is overridden at build time via
// -ldflags "-X main.version=...".
var version = "dev"

func main() {
	library := jsonfile.New()

	orchestrator := services.NewConvertOrchestrator(
		filesystem.NewFactory(),
		svg.New(),
		postprocessors.Default(),
		library,
		stateStore(),
	)

	cli.SetServices(orchestrator, services.NewLibraryReader(library))
	cli.SetConfigStore(configStore())
	cli.SetVersion(version)
	cli.Execute()
}

// stateStore opens the ingest state cache in ~/.symbolkit/data or
// $SYMBOLKIT_STATE_DIR. A failure only disables caching; conversion
// needs no local state.
func stateStore() driven.IngestStateStore {
	store, err := sqlite.NewStore(os.Getenv("SYMBOLKIT_STATE_DIR"))
	if err != nil {
		logger.Warn("cannot open state cache, caching disabled: %v", err)
		return nil
	}
	return store
}

// configStore opens the TOML config file, nil when unavailable.
func configStore() driven.ConfigStore {
	store, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("cannot open config: %v", err)
		return nil
	}
	return store
}
