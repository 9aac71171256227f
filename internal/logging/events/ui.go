package events

import "github.com/atomicstack/script-popup/internal/logging"

type ModeTracer struct{}

type SearchTracer struct{}

type SelectionTracer struct{}

type CommandTracer struct{}

var (
	Mode      = ModeTracer{}
	Search    = SearchTracer{}
	Selection = SelectionTracer{}
	Command   = CommandTracer{}
)

func (ModeTracer) Change(from, to string) {
	logging.Trace("mode.change", map[string]interface{}{"from": from, "to": to})
}

func (ModeTracer) Theme(name string) {
	logging.Trace("mode.theme", map[string]interface{}{"theme": name})
}

func (SearchTracer) Query(query string, results int, suggestion string) {
	logging.Trace("search.query", map[string]interface{}{
		"query":      query,
		"results":    results,
		"suggestion": suggestion,
	})
}

func (SearchTracer) Accept(suggestion string) {
	logging.Trace("search.accept", map[string]interface{}{"suggestion": suggestion})
}

func (SearchTracer) Select(display string) {
	logging.Trace("search.select", map[string]interface{}{"script": display})
}

func (SelectionTracer) Cursor(panel string, index int) {
	logging.Trace("selection.cursor", map[string]interface{}{"panel": panel, "cursor": index})
}

func (SelectionTracer) MultiSelect(enabled bool) {
	logging.Trace("selection.multi", map[string]interface{}{"enabled": enabled})
}

func (SelectionTracer) Toggle(path string, selected bool, count int) {
	logging.Trace("selection.toggle", map[string]interface{}{
		"path":     path,
		"selected": selected,
		"count":    count,
	})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
