// Package driver runs one generation pass: every category over one window, written through a sink.
package driver

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fixturegen-go/internal/fixtures"
	"fixturegen-go/internal/metrics"
	"fixturegen-go/internal/sample"
	"fixturegen-go/internal/sink"
)

// Fixture file names, in write order.
const (
	SpotTradesFile    = "spot_trades.json"
	FuturesTradesFile = "futures_trades.json"
	DepositsFile      = "deposits.json"
	WithdrawalsFile   = "withdrawals.json"
	StakingFile       = "staking.json"
	ManifestFile      = "manifest.json"
)

// Options fixes the window and bookkeeping for a single run.
type Options struct {
	Start time.Time
	End   time.Time
	// Seed is the seed r was built from; recorded only.
	Seed     int64
	Manifest bool
}

// Summary describes a finished run. It doubles as the manifest document.
type Summary struct {
	RunID       string         `json:"runId"`
	Seed        int64          `json:"seed"`
	Start       time.Time      `json:"start"`
	End         time.Time      `json:"end"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Files       map[string]int `json:"files"`
}

// Driver generates every fixture category and hands the documents to a sink.
type Driver struct {
	sink sink.Sink
	log  zerolog.Logger
	now  func() time.Time
}

// New wires a driver to its output sink and logger.
func New(s sink.Sink, log zerolog.Logger) *Driver {
	return &Driver{sink: s, log: log, now: time.Now}
}

type document struct {
	name     string
	category string
	rows     any
	count    int
}

// Run draws every category from r over [opts.Start, opts.End] and writes the
// five fixture files. The first write error aborts the run.
func (d *Driver) Run(opts Options, r sample.Source) (Summary, error) {
	summary := Summary{
		RunID: uuid.NewString(),
		Seed:  opts.Seed,
		Start: opts.Start,
		End:   opts.End,
		Files: make(map[string]int, 5),
	}

	spot := fixtures.Spot(opts.Start, opts.End, r)
	futures := fixtures.Futures(opts.Start, opts.End, r)
	wallet := fixtures.Wallet(opts.Start, opts.End, r)
	staking := fixtures.Staking(opts.Start, opts.End, r)

	docs := []document{
		{SpotTradesFile, "spot", spot, len(spot)},
		{FuturesTradesFile, "futures", futures, len(futures)},
		{DepositsFile, "deposit", wallet.Deposits, len(wallet.Deposits)},
		{WithdrawalsFile, "withdrawal", wallet.Withdrawals, len(wallet.Withdrawals)},
		{StakingFile, "staking", staking, len(staking)},
	}

	for _, doc := range docs {
		metrics.RecordsGenerated.WithLabelValues(doc.category).Add(float64(doc.count))
		if err := d.write(doc.name, doc.rows); err != nil {
			metrics.Runs.WithLabelValues("error").Inc()
			return summary, err
		}
		summary.Files[doc.name] = doc.count
		d.log.Debug().Str("file", doc.name).Int("records", doc.count).Msg("fixture written")
	}
	summary.GeneratedAt = d.now().UTC()

	if opts.Manifest {
		if err := d.write(ManifestFile, summary); err != nil {
			metrics.Runs.WithLabelValues("error").Inc()
			return summary, err
		}
	}

	metrics.Runs.WithLabelValues("ok").Inc()
	d.log.Info().
		Str("run", summary.RunID).
		Int64("seed", summary.Seed).
		Time("start", summary.Start).
		Time("end", summary.End).
		Interface("files", summary.Files).
		Msg("fixtures generated")
	return summary, nil
}

func (d *Driver) write(name string, v any) error {
	if err := d.sink.Write(name, v); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	metrics.FilesWritten.WithLabelValues(name).Inc()
	return nil
}
