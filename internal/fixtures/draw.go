package fixtures

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fixturegen-go/internal/sample"
)

// eachDay calls fn for every calendar day from start through end inclusive.
// An inverted range never calls fn.
func eachDay(start, end time.Time, fn func(day time.Time)) {
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		fn(day)
	}
}

func draw(r sample.Source, s span) float64 { return sample.Uniform(r, s.lo, s.hi) }

func tradeID(r sample.Source) int64 {
	return int64(sample.IntBetween(r, minTradeID, maxTradeID))
}

func txID(r sample.Source) string {
	return fmt.Sprintf("0x%x", sample.IntBetween(r, minTxID, maxTxID))
}

// formatDecimal renders f as the shortest decimal string that round-trips.
func formatDecimal(f float64) string {
	return decimal.NewFromFloat(f).String()
}

// quoteAsset is the trailing four characters of a USDT-quoted pair.
func quoteAsset(symbol string) string {
	if len(symbol) <= 4 {
		return symbol
	}
	return symbol[len(symbol)-4:]
}
