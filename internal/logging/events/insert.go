package events

import "github.com/calebmor/varmenu/internal/logging"

type InsertTracer struct{}

var Insert = InsertTracer{}

func (InsertTracer) Planned(address, text string, cursor int) {
	logging.Trace("insert.plan", map[string]interface{}{
		"address": address,
		"text":    text,
		"cursor":  cursor,
	})
}

func (InsertTracer) NoSelection() {
	logging.Trace("insert.no-selection", nil)
}

func (InsertTracer) Recovered(index int) {
	logging.Trace("insert.recovered", map[string]interface{}{"index": index})
}
