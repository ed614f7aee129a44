package datasets

import (
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

// OnbidUseCodes maps the principal Onbid asset-use codes to their Korean
// names. Attached to listing results as a static reference table.
var OnbidUseCodes = map[string]string{
	"001": "토지",
	"002": "건물",
	"003": "아파트",
	"004": "오피스텔",
	"005": "상가",
	"006": "공장",
	"007": "차량/기계",
	"008": "기타동산",
	"009": "유가증권",
	"010": "임야",
	"011": "농지",
	"012": "선박/항공기",
}

// OnbidDisposalCodes maps Onbid disposal-method codes to their names.
var OnbidDisposalCodes = map[string]string{
	"01": "매각",
	"02": "임대",
	"03": "교환",
	"05": "분양",
}

// MapAuctionItem maps one Onbid listing record.
func MapAuctionItem(rec molit.Record) domain.AuctionItem {
	return domain.AuctionItem{
		ItemNo:         rec.Get("cltrMngNo"),
		ItemName:       rec.Get("goodsNm", "cltrNm"),
		Location:       rec.Get("ldtlAddr", "rdnAddr"),
		UseType:        rec.Get("useNm"),
		AreaM2:         rec.Get("totArea", "exclsArea"),
		AppraisedValue: molit.ParseAmount(rec.Get("apprAmt")),
		MinimumBid:     molit.ParseAmount(rec.Get("minBidAmt")),
		BidStartDate:   rec.Get("pbctBgngDt"),
		BidEndDate:     rec.Get("pbctEndDt"),
		BidCount:       rec.Get("pbctCnt"),
		DisposalMethod: rec.Get("dspslMthdNm"),
		Agency:         rec.Get("cnsgAgcyNm", "agcyNm"),
		Remarks:        rec.Get("rmrk"),
	}
}

// MapBidResult maps one Onbid bid-outcome record. The winning-rate
// annotation happens at the result level, not here.
func MapBidResult(rec molit.Record) domain.BidResult {
	return domain.BidResult{
		ItemNo:         rec.Get("cltrMngNo"),
		ItemName:       rec.Get("goodsNm", "cltrNm"),
		Location:       rec.Get("ldtlAddr", "rdnAddr"),
		UseType:        rec.Get("useNm"),
		AppraisedValue: molit.ParseAmount(rec.Get("apprAmt")),
		MinimumBid:     molit.ParseAmount(rec.Get("minBidAmt")),
		WinningBid:     molit.ParseAmount(rec.Get("sucsBidAmt", "sellAmt")),
		BidDate:        rec.Get("pbctDt", "bidDt"),
		BidStatus:      rec.Get("pbctSttNm", "bidSttNm"),
		DisposalMethod: rec.Get("dspslMthdNm"),
		Agency:         rec.Get("cnsgAgcyNm", "agcyNm"),
	}
}
