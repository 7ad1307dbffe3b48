// Package fixtures fabricates exchange-shaped account activity: spot and futures fills,
// deposits, withdrawals and staking rewards. Numeric amounts are rendered as decimal
// strings because that is what the exchange REST API returns.
package fixtures

// SpotTrade mirrors a row of the spot account trade list.
type SpotTrade struct {
	Symbol          string `json:"symbol"`
	ID              int64  `json:"id"`
	OrderID         int64  `json:"orderId"`
	Price           string `json:"price"`
	Qty             string `json:"qty"`
	Commission      string `json:"commission"`
	CommissionAsset string `json:"commissionAsset"`
	Time            int64  `json:"time"`
	IsBuyer         bool   `json:"isBuyer"`
	IsMaker         bool   `json:"isMaker"`
	IsBestMatch     bool   `json:"isBestMatch"`
}

// FuturesTrade mirrors a row of the USD-M futures user trade list.
type FuturesTrade struct {
	Symbol          string `json:"symbol"`
	ID              int64  `json:"id"`
	OrderID         int64  `json:"orderId"`
	Side            Side   `json:"side"`
	Price           string `json:"price"`
	Qty             string `json:"qty"`
	RealizedPnl     string `json:"realizedPnl"`
	Commission      string `json:"commission"`
	CommissionAsset string `json:"commissionAsset"`
	Time            int64  `json:"time"`
	PositionSide    string `json:"positionSide"`
	IsMaker         bool   `json:"isMaker"`
}

// Deposit is an on-chain credit to the account.
type Deposit struct {
	Coin       string `json:"coin"`
	Amount     string `json:"amount"`
	Status     int    `json:"status"`
	InsertTime int64  `json:"insertTime"`
	TxID       string `json:"txId"`
}

// Withdrawal is an on-chain debit, carrying the network fee charged for it.
type Withdrawal struct {
	Coin           string `json:"coin"`
	Amount         string `json:"amount"`
	TransactionFee string `json:"transactionFee"`
	Status         int    `json:"status"`
	ApplyTime      int64  `json:"applyTime"`
	TxID           string `json:"txId"`
}

// StakingRecord is a single staking reward payout.
type StakingRecord struct {
	Asset    string `json:"asset"`
	Amount   string `json:"amount"`
	Time     int64  `json:"time"`
	APY      string `json:"apy"`
	Duration int    `json:"duration"`
}

// Transfers holds the two parallel sequences produced for wallet movements.
type Transfers struct {
	Deposits    []Deposit
	Withdrawals []Withdrawal
}
