package fixtures

import (
	"time"

	"fixturegen-go/internal/sample"
)

// Wallet generates deposits and withdrawals across [start, end]. Each day draws
// up to two deposits first, then at most one withdrawal.
func Wallet(start, end time.Time, r sample.Source) Transfers {
	out := Transfers{Deposits: []Deposit{}, Withdrawals: []Withdrawal{}}
	eachDay(start, end, func(day time.Time) {
		ts := day.UnixMilli()

		for i, n := 0, sample.IntBetween(r, 0, 2); i < n; i++ {
			coin := sample.Pick(r, TransferCoins)
			amount := draw(r, depositAmounts[coin])
			out.Deposits = append(out.Deposits, Deposit{
				Coin:       coin,
				Amount:     formatDecimal(amount),
				Status:     StatusSuccess,
				InsertTime: ts,
				TxID:       txID(r),
			})
		}

		for i, n := 0, sample.IntBetween(r, 0, 1); i < n; i++ {
			coin := sample.Pick(r, TransferCoins)
			amount := draw(r, withdrawalAmounts[coin])
			fee, _ := WithdrawalFee(coin)
			out.Withdrawals = append(out.Withdrawals, Withdrawal{
				Coin:           coin,
				Amount:         formatDecimal(amount),
				TransactionFee: formatDecimal(fee),
				Status:         StatusSuccess,
				ApplyTime:      ts,
				TxID:           txID(r),
			})
		}
	})
	return out
}

// Staking generates at most one reward per day across [start, end].
func Staking(start, end time.Time, r sample.Source) []StakingRecord {
	records := []StakingRecord{}
	eachDay(start, end, func(day time.Time) {
		for i, n := 0, sample.IntBetween(r, 0, 1); i < n; i++ {
			asset := sample.Pick(r, StakingAssets)
			amount := draw(r, stakingAmounts[asset])
			records = append(records, StakingRecord{
				Asset:    asset,
				Amount:   formatDecimal(amount),
				Time:     day.UnixMilli(),
				APY:      formatDecimal(draw(r, stakingAPY)),
				Duration: stakingDuration,
			})
		}
	})
	return records
}
