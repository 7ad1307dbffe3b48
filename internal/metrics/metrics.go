package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecordsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fixture_records_generated_total", Help: "Synthetic records generated"},
		[]string{"category"},
	)
	FilesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fixture_files_written_total", Help: "Fixture documents written"},
		[]string{"file"},
	)
	Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fixture_runs_total", Help: "Generation runs by outcome"},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(RecordsGenerated, FilesWritten, Runs)
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
