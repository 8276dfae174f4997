package events

import "github.com/calebmor/varmenu/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(path string, items int) {
	logging.Trace("catalog.load", map[string]interface{}{
		"path":  path,
		"items": items,
	})
}

func (CatalogTracer) Replaced(items int, forcedClose bool) {
	logging.Trace("catalog.replace", map[string]interface{}{
		"items":       items,
		"forcedClose": forcedClose,
	})
}

func (CatalogTracer) WatchError(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.watch-error", map[string]interface{}{"error": err.Error()})
}
