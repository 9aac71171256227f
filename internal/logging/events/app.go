package events

import "github.com/atomicstack/script-popup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Catalog(root string, categories, scripts int) {
	logging.Trace("app.catalog", map[string]interface{}{
		"root":       root,
		"categories": categories,
		"scripts":    scripts,
	})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
