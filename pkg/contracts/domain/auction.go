package domain

// AuctionItem is one Onbid public-auction listing.
type AuctionItem struct {
	ItemNo         string `json:"item_no"`
	ItemName       string `json:"item_name"`
	Location       string `json:"location"`
	UseType        string `json:"use_type"`
	AreaM2         string `json:"area_m2"`
	AppraisedValue *int64 `json:"appraised_value"`
	MinimumBid     *int64 `json:"minimum_bid"`
	BidStartDate   string `json:"bid_start_date"`
	BidEndDate     string `json:"bid_end_date"`
	BidCount       string `json:"bid_count"`
	DisposalMethod string `json:"disposal_method"`
	Agency         string `json:"agency"`
	Remarks        string `json:"remarks"`
}

// BidResult is one Onbid bid outcome. WinningRatePct is computed, not
// upstream data: round(winning/minimum*100, 1), present only when both bids
// are strictly positive.
type BidResult struct {
	ItemNo         string   `json:"item_no"`
	ItemName       string   `json:"item_name"`
	Location       string   `json:"location"`
	UseType        string   `json:"use_type"`
	AppraisedValue *int64   `json:"appraised_value"`
	MinimumBid     *int64   `json:"minimum_bid"`
	WinningBid     *int64   `json:"winning_bid"`
	WinningRatePct *float64 `json:"winning_rate_pct,omitempty"`
	BidDate        string   `json:"bid_date"`
	BidStatus      string   `json:"bid_status"`
	DisposalMethod string   `json:"disposal_method"`
	Agency         string   `json:"agency"`
}
