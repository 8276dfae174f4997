package events

import "github.com/calebmor/varmenu/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) MenuOpen(items int) {
	logging.Trace("menu.open", map[string]interface{}{"items": items})
}

func (UITracer) MenuClose(reason string) {
	logging.Trace("menu.close", map[string]interface{}{"reason": reason})
}

func (UITracer) MenuCursor(index int, address string) {
	logging.Trace("menu.cursor", map[string]interface{}{
		"index":   index,
		"address": address,
	})
}

func (UITracer) MenuCommit(address string, applied bool) {
	logging.Trace("menu.commit", map[string]interface{}{
		"address": address,
		"applied": applied,
	})
}

func (UITracer) FocusZone(zone string) {
	logging.Trace("ui.focus", map[string]interface{}{"zone": zone})
}
