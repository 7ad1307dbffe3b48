package fixtures

import (
	"time"

	"fixturegen-go/internal/sample"
)

// Spot generates one to five spot fills per day across [start, end].
func Spot(start, end time.Time, r sample.Source) []SpotTrade {
	trades := []SpotTrade{}
	eachDay(start, end, func(day time.Time) {
		n := sample.IntBetween(r, 1, 5)
		for i := 0; i < n; i++ {
			symbol := sample.Pick(r, TradeSymbols)
			isBuyer := sample.Bool(r)
			price := draw(r, tradePrices[symbol])
			qty := draw(r, spotQty)
			commission := price * qty * spotCommissionRate

			trades = append(trades, SpotTrade{
				Symbol:          symbol,
				ID:              tradeID(r),
				OrderID:         tradeID(r),
				Price:           formatDecimal(price),
				Qty:             formatDecimal(qty),
				Commission:      formatDecimal(commission),
				CommissionAsset: quoteAsset(symbol),
				Time:            day.UnixMilli(),
				IsBuyer:         isBuyer,
				IsMaker:         sample.Bool(r),
				IsBestMatch:     true,
			})
		}
	})
	return trades
}

// Futures generates one to three USD-M futures fills per day across [start, end].
func Futures(start, end time.Time, r sample.Source) []FuturesTrade {
	trades := []FuturesTrade{}
	eachDay(start, end, func(day time.Time) {
		n := sample.IntBetween(r, 1, 3)
		for i := 0; i < n; i++ {
			symbol := sample.Pick(r, TradeSymbols)
			side := sample.Pick(r, futuresSides)
			price := draw(r, tradePrices[symbol])
			qty := draw(r, futuresQty)
			commission := price * qty * futuresCommissionRate
			pnl := draw(r, futuresPnl)

			trades = append(trades, FuturesTrade{
				Symbol:          symbol,
				ID:              tradeID(r),
				OrderID:         tradeID(r),
				Side:            side,
				Price:           formatDecimal(price),
				Qty:             formatDecimal(qty),
				RealizedPnl:     formatDecimal(pnl),
				Commission:      formatDecimal(commission),
				CommissionAsset: futuresCommissionAsset,
				Time:            day.UnixMilli(),
				PositionSide:    futuresPositionSide,
				IsMaker:         sample.Bool(r),
			})
		}
	})
	return trades
}
