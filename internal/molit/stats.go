package molit

import (
	"math"
	"sort"

	"kredata/pkg/contracts/domain"
)

// SummarizePrices computes the distribution summary over the given amounts.
// Returns nil when no amounts are present so callers can omit the summary
// rather than emit a zero-valued one.
func SummarizePrices(amounts []int64) *domain.PriceSummary {
	if len(amounts) == 0 {
		return nil
	}
	sorted := make([]int64, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = float64(sorted[n/2])
	} else {
		median = (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
	}
	return &domain.PriceSummary{
		Median: median,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Count:  n,
	}
}

// RentObservation is one rental record reduced to the fields the rent
// summary partitions on.
type RentObservation struct {
	LeaseType   string
	Deposit     *int64
	MonthlyRent *int64
}

// SummarizeRent partitions rental amounts by lease type. Deposit-only
// leases contribute their deposit to the jeonse partition; monthly leases
// contribute deposit and rent to their respective partitions. Empty
// partitions stay nil. The summary itself is always produced, even when all
// partitions are empty.
func SummarizeRent(obs []RentObservation) *domain.RentSummary {
	var jeonse, monthlyDep, monthlyRent []int64
	for _, o := range obs {
		switch o.LeaseType {
		case domain.LeaseDepositOnly:
			if o.Deposit != nil {
				jeonse = append(jeonse, *o.Deposit)
			}
		case domain.LeaseMonthly:
			if o.Deposit != nil {
				monthlyDep = append(monthlyDep, *o.Deposit)
			}
			if o.MonthlyRent != nil {
				monthlyRent = append(monthlyRent, *o.MonthlyRent)
			}
		}
	}
	return &domain.RentSummary{
		JeonseDeposit:  SummarizePrices(jeonse),
		MonthlyDeposit: SummarizePrices(monthlyDep),
		MonthlyRent:    SummarizePrices(monthlyRent),
	}
}

// AnnotateWinningRates computes the winning-rate percentage for each bid
// result where both a positive winning bid and a positive minimum bid are
// known, then aggregates the rates. Records missing either bound, and
// unsold lots reported with a zero winning bid, are left without a rate
// and excluded from the aggregates. Returns nil when no record qualifies.
func AnnotateWinningRates(results []domain.BidResult) *domain.BidStats {
	var rates []float64
	for i := range results {
		r := &results[i]
		if r.WinningBid == nil || *r.WinningBid <= 0 || r.MinimumBid == nil || *r.MinimumBid <= 0 {
			continue
		}
		rate := round1(float64(*r.WinningBid) / float64(*r.MinimumBid) * 100)
		r.WinningRatePct = &rate
		rates = append(rates, rate)
	}
	if len(rates) == 0 {
		return nil
	}
	var sum, max float64
	for i, rate := range rates {
		sum += rate
		if i == 0 || rate > max {
			max = rate
		}
	}
	return &domain.BidStats{
		AvgWinningRatePct: round1(sum / float64(len(rates))),
		MaxWinningRatePct: max,
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
