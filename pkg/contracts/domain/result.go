package domain

import "encoding/json"

// CallError is the failure side of a Result. Message is always set; Raw
// optionally carries a bounded prefix of the upstream payload for diagnostics.
type CallError struct {
	Message string `json:"error"`
	Raw     string `json:"raw,omitempty"`
}

func (e *CallError) Error() string { return e.Message }

// PriceSummary is a distribution summary over the amounts present in a
// result set. Median follows the statistical definition (average of the two
// middle values for even-sized sets).
type PriceSummary struct {
	Median float64 `json:"median"`
	Min    int64   `json:"min"`
	Max    int64   `json:"max"`
	Count  int     `json:"count"`
}

// RentSummary partitions rental amounts by lease type. Only non-empty
// partitions are present.
type RentSummary struct {
	JeonseDeposit  *PriceSummary `json:"jeonse_deposit,omitempty"`
	MonthlyDeposit *PriceSummary `json:"monthly_deposit,omitempty"`
	MonthlyRent    *PriceSummary `json:"monthly_rent,omitempty"`
}

// BidStats aggregates winning-bid-to-minimum-bid rates over a bid-result set.
type BidStats struct {
	AvgWinningRatePct float64 `json:"avg_winning_rate_pct"`
	MaxWinningRatePct float64 `json:"max_winning_rate_pct"`
}

// Result is the uniform envelope every dataset call yields: either the
// success shape (counts, items, derived statistics) or the error shape
// ({error, raw?}). The two are mutually exclusive and MarshalJSON enforces
// that exclusivity.
type Result[T any] struct {
	TotalCount    int `json:"total_count"`
	ReturnedCount int `json:"returned_count"`

	// Echoed request parameters, populated per dataset family.
	RegionCode string `json:"region_code,omitempty"`
	YearMonth  string `json:"year_month,omitempty"`
	SigunguCd  string `json:"sigungu_cd,omitempty"`
	BjdongCd   string `json:"bjdong_cd,omitempty"`
	PageNo     int    `json:"page_no,omitempty"`

	Items []T `json:"items"`

	PriceSummary *PriceSummary `json:"price_summary,omitempty"`
	RentSummary  *RentSummary  `json:"rent_summary,omitempty"`
	Statistics   *BidStats     `json:"statistics,omitempty"`

	// Static reference tables attached to auction listings.
	UseCodeReference map[string]string `json:"use_code_reference,omitempty"`
	DisposalMethods  map[string]string `json:"disposal_methods,omitempty"`

	Err *CallError `json:"-"`
}

// Fail builds an error-shaped Result.
func Fail[T any](message string) Result[T] {
	return Result[T]{Err: &CallError{Message: message}}
}

// FailRaw builds an error-shaped Result carrying a raw payload prefix.
func FailRaw[T any](message, raw string) Result[T] {
	return Result[T]{Err: &CallError{Message: message, Raw: raw}}
}

// IsError reports whether the result carries the error shape.
func (r Result[T]) IsError() bool { return r.Err != nil }

// MarshalJSON emits exactly one of the two envelope shapes.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(r.Err)
	}
	type success Result[T] // drop methods to avoid recursion
	s := success(r)
	if s.Items == nil {
		s.Items = []T{}
	}
	return json.Marshal(s)
}
