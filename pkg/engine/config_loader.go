// Building the request resolver from a loaded configuration.

package engine

import (
	"log/slog"
	"strings"

	"github.com/getmockd/mockdb/pkg/config"
	"github.com/getmockd/mockdb/pkg/docstore"
	"github.com/getmockd/mockdb/pkg/logging"
	"github.com/getmockd/mockdb/pkg/router"
)

// NewResolver mounts every document in cfg.DB and builds the static route
// table from cfg.Endpoints. A mount with a relative path or a document that
// is not valid JSON is logged and skipped; the rest are still served.
func NewResolver(cfg *config.Config, log *slog.Logger) *router.Resolver {
	if log == nil {
		log = logging.Nop()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	for method, eps := range cfg.Endpoints {
		for _, ep := range eps {
			log.Debug("loaded endpoint", "method", method, "path", ep.Path, "status", ep.Status)
		}
	}

	registry := docstore.NewRegistry(docstore.WithLogger(log))
	for i, m := range cfg.DB {
		if !strings.HasPrefix(m.Path, "/") {
			log.Error("skipping mount with invalid path", "index", i, "path", m.Path)
			continue
		}
		if _, err := registry.Mount(m.Path, m.Data); err != nil {
			log.Error("skipping mount with invalid document", "index", i, "path", m.Path, "error", err)
			continue
		}
		log.Info("mounted document", "path", m.Path)
	}

	return router.NewResolver(registry, router.NewRouteTable(cfg.Endpoints))
}
