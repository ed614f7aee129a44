package services

import (
	"context"
	"strconv"

	"kredata/internal/datasets"
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

// AuctionQuery filters an Onbid listing call. All fields are optional; an
// empty query lists nationwide.
type AuctionQuery struct {
	Sido           string `json:"sido"`
	Sigungu        string `json:"sigungu"`
	UseCode        string `json:"use_code"`
	DisposalMethod string `json:"disposal_method"`
	// Prices are in 10,000-KRW units; the gateway filter takes KRW.
	MinPrice     int    `json:"min_price"`
	MaxPrice     int    `json:"max_price"`
	BidStartDate string `json:"bid_start_date"`
	BidEndDate   string `json:"bid_end_date"`
	Keyword      string `json:"keyword"`
	Rows         int    `json:"num_of_rows"`
	PageNo       int    `json:"page_no"`
}

func (q AuctionQuery) params() map[string]string {
	page := q.PageNo
	if page <= 0 {
		page = 1
	}
	params := map[string]string{
		"numOfRows": strconv.Itoa(clampRows(q.Rows, defaultAuctionRows)),
		"pageNo":    strconv.Itoa(page),
	}
	if q.Sido != "" {
		params["sido"] = q.Sido
	}
	if q.Sigungu != "" {
		params["sigungu"] = q.Sigungu
	}
	if q.UseCode != "" {
		params["useCode"] = q.UseCode
	}
	if q.DisposalMethod != "" {
		params["dspslMthd"] = q.DisposalMethod
	}
	if q.MinPrice > 0 {
		params["minBidAmtFrom"] = strconv.Itoa(q.MinPrice * 10000)
	}
	if q.MaxPrice > 0 {
		params["minBidAmtTo"] = strconv.Itoa(q.MaxPrice * 10000)
	}
	if q.BidStartDate != "" {
		params["pbctBgngDt"] = q.BidStartDate
	}
	if q.BidEndDate != "" {
		params["pbctEndDt"] = q.BidEndDate
	}
	if q.Keyword != "" {
		params["goodsNm"] = q.Keyword
	}
	return params
}

// AuctionItems lists Onbid public-auction items. The static use-code
// reference table rides along with every successful result.
func (s *DataService) AuctionItems(ctx context.Context, q AuctionQuery) domain.Result[domain.AuctionItem] {
	res := molit.Run(ctx, s.client, molit.Call{
		Endpoint:   s.endpoints.OnbidThingInfo,
		ServiceKey: s.onbidKey,
		Params:     q.params(),
		Format:     molit.FormatJSON,
		Label:      "public auction items",
	}, datasets.MapAuctionItem, nil)
	if !res.IsError() {
		res.PageNo = pageOrDefault(q.PageNo)
		res.UseCodeReference = datasets.OnbidUseCodes
	}
	return res
}

// AuctionResults lists Onbid bid outcomes with winning rates annotated
// per record and aggregated at the result level.
func (s *DataService) AuctionResults(ctx context.Context, q AuctionQuery) domain.Result[domain.BidResult] {
	res := molit.Run(ctx, s.client, molit.Call{
		Endpoint:   s.endpoints.OnbidBidResult,
		ServiceKey: s.onbidKey,
		Params:     q.params(),
		Format:     molit.FormatJSON,
		Label:      "public auction bid results",
	}, datasets.MapBidResult, func(r *domain.Result[domain.BidResult]) {
		r.Statistics = molit.AnnotateWinningRates(r.Items)
	})
	if !res.IsError() {
		res.PageNo = pageOrDefault(q.PageNo)
	}
	return res
}

// AuctionCodes returns the static Onbid code tables.
func (s *DataService) AuctionCodes() (useCodes, disposalMethods map[string]string) {
	return datasets.OnbidUseCodes, datasets.OnbidDisposalCodes
}

func pageOrDefault(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}
