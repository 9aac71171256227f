package events

import "github.com/atomicstack/script-popup/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Start(id, path, runner string) {
	logging.Trace("launch.start", map[string]interface{}{"id": id, "path": path, "runner": runner})
}

func (LaunchTracer) Finish(id, path string, exitCode int, err error) {
	payload := map[string]interface{}{"id": id, "path": path, "exit": exitCode}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("launch.finish", payload)
}

func (LaunchTracer) Queue(remaining []string) {
	logging.Trace("launch.queue", map[string]interface{}{"remaining": remaining})
}

func (LaunchTracer) Discard(remaining int) {
	logging.Trace("launch.discard", map[string]interface{}{"remaining": remaining})
}
