package fixtures

// Side enumerates futures order directions.
type Side string

const (
	// Buy opens or adds to a long.
	Buy Side = "BUY"
	// Sell opens or adds to a short.
	Sell Side = "SELL"
)

const (
	spotCommissionRate    = 0.001
	futuresCommissionRate = 0.0004

	futuresCommissionAsset = "USDT"

	// BOTH is one-way position mode.
	futuresPositionSide = "BOTH"

	// StatusSuccess is the wallet API code for a completed transfer.
	StatusSuccess = 1

	stakingDuration = 30

	minTradeID, maxTradeID = 1000000, 9999999
	minTxID, maxTxID       = 100000, 999999
)

type span struct{ lo, hi float64 }

var (
	// TradeSymbols is the pair universe for spot and futures fills.
	TradeSymbols = []string{"BTCUSDT", "ETHUSDT", "BNBUSDT"}
	// TransferCoins is the coin universe for deposits and withdrawals.
	TransferCoins = []string{"BTC", "ETH", "USDT", "BNB"}
	// StakingAssets is the coin universe for staking rewards.
	StakingAssets = []string{"BNB", "ETH"}

	futuresSides = []Side{Buy, Sell}

	tradePrices = map[string]span{
		"BTCUSDT": {30000, 60000},
		"ETHUSDT": {1500, 3000},
		"BNBUSDT": {200, 400},
	}
	spotQty    = span{0.1, 1.0}
	futuresQty = span{0.1, 2.0}
	futuresPnl = span{-1000, 1000}
	stakingAPY = span{5, 15}

	depositAmounts = map[string]span{
		"BTC":  {0.1, 1.0},
		"ETH":  {1.0, 10.0},
		"USDT": {1000, 10000},
		"BNB":  {5, 50},
	}
	withdrawalAmounts = map[string]span{
		"BTC":  {0.1, 0.5},
		"ETH":  {1.0, 5.0},
		"USDT": {500, 5000},
		"BNB":  {2, 20},
	}
	withdrawalFees = map[string]float64{
		"BTC":  0.0001,
		"ETH":  0.005,
		"USDT": 1,
		"BNB":  0.01,
	}
	stakingAmounts = map[string]span{
		"BNB": {0.1, 1.0},
		"ETH": {0.01, 0.1},
	}
)

// WithdrawalFee returns the flat network fee charged for coin.
func WithdrawalFee(coin string) (float64, bool) {
	fee, ok := withdrawalFees[coin]
	return fee, ok
}
