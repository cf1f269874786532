package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	goSession "github.com/MrEthical07/goSession"
	"github.com/MrEthical07/goSession/metrics/export/internaldefs"
)

type metricsSource interface {
	MetricsSnapshot() goSession.MetricsSnapshot
}

// Exporter renders goSession metrics in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an exporter reading from the given engine.
func NewExporter(engine *goSession.SessionInterface) *Exporter {
	return &Exporter{source: engine}
}

// NewExporterFromSource creates an exporter from a custom snapshot source.
func NewExporterFromSource(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler that serves the current metrics.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render writes the current counters in Prometheus text exposition format.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()
	if len(snapshot.Counters) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(2048)
	for _, def := range internaldefs.CounterDefs {
		writeCounter(&b, def.Name, def.Help, snapshot.Counters[def.ID])
	}
	return b.String()
}

func writeCounter(b *strings.Builder, name, help string, value uint64) {
	b.WriteString("# HELP ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(escapeHelp(help))
	b.WriteByte('\n')
	b.WriteString("# TYPE ")
	b.WriteString(name)
	b.WriteString(" counter\n")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatUint(value, 10))
	b.WriteByte('\n')
}

func escapeHelp(help string) string {
	help = strings.ReplaceAll(help, "\\", "\\\\")
	return strings.ReplaceAll(help, "\n", "\\n")
}
