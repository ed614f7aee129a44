// Package services composes the gateway pipeline, the dataset mappers,
// and the statistics aggregators into the operations the transport and
// tool surfaces expose.
package services

import (
	"context"
	"log/slog"
	"strconv"

	"kredata/internal/datasets"
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

const (
	defaultTradeRows   = 100
	defaultAuctionRows = 50
	maxRows            = 1000
)

// Endpoints carries the upstream URL per dataset operation. Tests swap in
// httptest servers; production uses DefaultEndpoints.
type Endpoints struct {
	AptTrade        string
	OffiTrade       string
	VillaTrade      string
	HouseTrade      string
	CommercialTrade string

	AptRent   string
	OffiRent  string
	VillaRent string
	HouseRent string

	OnbidThingInfo string
	OnbidBidResult string

	PermitBasis   string
	PermitParking string
	PermitZone    string
	PermitLoc     string
	PermitHousing string
}

// DefaultEndpoints returns the production gateway endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		AptTrade:        datasets.AptTradeURL,
		OffiTrade:       datasets.OffiTradeURL,
		VillaTrade:      datasets.VillaTradeURL,
		HouseTrade:      datasets.HouseTradeURL,
		CommercialTrade: datasets.CommercialTradeURL,
		AptRent:         datasets.AptRentURL,
		OffiRent:        datasets.OffiRentURL,
		VillaRent:       datasets.VillaRentURL,
		HouseRent:       datasets.HouseRentURL,
		OnbidThingInfo:  datasets.OnbidThingInfoURL,
		OnbidBidResult:  datasets.OnbidBidResultURL,
		PermitBasis:     datasets.PermitBasisURL,
		PermitParking:   datasets.PermitParkingURL,
		PermitZone:      datasets.PermitZoneURL,
		PermitLoc:       datasets.PermitLocURL,
		PermitHousing:   datasets.PermitHousingURL,
	}
}

// DataService exposes one operation per dataset family. It is safe for
// concurrent use; all state is immutable after construction.
type DataService struct {
	client    *molit.Client
	apiKey    string
	onbidKey  string
	logger    *slog.Logger
	endpoints Endpoints
}

// NewDataService builds the dataset facade. An empty onbidKey falls back
// to the main key; the Onbid service accepts the same credential when the
// caller has applied for both APIs under one account.
func NewDataService(client *molit.Client, apiKey, onbidKey string, logger *slog.Logger, eps Endpoints) *DataService {
	if onbidKey == "" {
		onbidKey = apiKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DataService{
		client:    client,
		apiKey:    apiKey,
		onbidKey:  onbidKey,
		logger:    logger,
		endpoints: eps,
	}
}

func clampRows(rows, def int) int {
	if rows <= 0 {
		return def
	}
	if rows > maxRows {
		return maxRows
	}
	return rows
}

func rtmsParams(regionCode, yearMonth string, rows int) map[string]string {
	return map[string]string{
		"LAWD_CD":   regionCode,
		"DEAL_YMD":  yearMonth,
		"numOfRows": strconv.Itoa(clampRows(rows, defaultTradeRows)),
		"pageNo":    "1",
	}
}

// runTrade executes one sale-transaction call and attaches the region
// echo fields plus the price summary over present amounts.
func runTrade[T any](ctx context.Context, s *DataService, endpoint, label, regionCode, yearMonth string, rows int, mapFn func(molit.Record) T, amount func(T) *int64) domain.Result[T] {
	res := molit.Run(ctx, s.client, molit.Call{
		Endpoint:   endpoint,
		ServiceKey: s.apiKey,
		Params:     rtmsParams(regionCode, yearMonth, rows),
		Format:     molit.FormatXML,
		Label:      label,
	}, mapFn, func(r *domain.Result[T]) {
		var amounts []int64
		for _, it := range r.Items {
			if v := amount(it); v != nil {
				amounts = append(amounts, *v)
			}
		}
		r.PriceSummary = molit.SummarizePrices(amounts)
	})
	if !res.IsError() {
		res.RegionCode = regionCode
		res.YearMonth = yearMonth
	}
	return res
}

// runRent executes one lease-transaction call. Rent results carry the
// per-lease-type rent summary instead of a flat price summary.
func runRent[T any](ctx context.Context, s *DataService, endpoint, label, regionCode, yearMonth string, rows int, mapFn func(molit.Record) T, obs func(T) molit.RentObservation) domain.Result[T] {
	res := molit.Run(ctx, s.client, molit.Call{
		Endpoint:   endpoint,
		ServiceKey: s.apiKey,
		Params:     rtmsParams(regionCode, yearMonth, rows),
		Format:     molit.FormatXML,
		Label:      label,
	}, mapFn, func(r *domain.Result[T]) {
		observations := make([]molit.RentObservation, 0, len(r.Items))
		for _, it := range r.Items {
			observations = append(observations, obs(it))
		}
		r.RentSummary = molit.SummarizeRent(observations)
	})
	if !res.IsError() {
		res.RegionCode = regionCode
		res.YearMonth = yearMonth
	}
	return res
}

// AptTrades returns apartment sale transactions for one region and month.
func (s *DataService) AptTrades(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.AptTrade] {
	return runTrade(ctx, s, s.endpoints.AptTrade, "apartment trades", regionCode, yearMonth, rows,
		datasets.MapAptTrade, func(t domain.AptTrade) *int64 { return t.Amount })
}

// OffiTrades returns officetel sale transactions.
func (s *DataService) OffiTrades(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.OffiTrade] {
	return runTrade(ctx, s, s.endpoints.OffiTrade, "officetel trades", regionCode, yearMonth, rows,
		datasets.MapOffiTrade, func(t domain.OffiTrade) *int64 { return t.Amount })
}

// VillaTrades returns row-house / multi-household sale transactions.
func (s *DataService) VillaTrades(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.VillaTrade] {
	return runTrade(ctx, s, s.endpoints.VillaTrade, "villa trades", regionCode, yearMonth, rows,
		datasets.MapVillaTrade, func(t domain.VillaTrade) *int64 { return t.Amount })
}

// HouseTrades returns detached / multi-family house sale transactions.
func (s *DataService) HouseTrades(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.HouseTrade] {
	return runTrade(ctx, s, s.endpoints.HouseTrade, "house trades", regionCode, yearMonth, rows,
		datasets.MapHouseTrade, func(t domain.HouseTrade) *int64 { return t.Amount })
}

// CommercialTrades returns commercial/office building sale transactions.
func (s *DataService) CommercialTrades(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.CommercialTrade] {
	return runTrade(ctx, s, s.endpoints.CommercialTrade, "commercial trades", regionCode, yearMonth, rows,
		datasets.MapCommercialTrade, func(t domain.CommercialTrade) *int64 { return t.Amount })
}

// AptRent returns apartment lease transactions.
func (s *DataService) AptRent(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.AptRent] {
	return runRent(ctx, s, s.endpoints.AptRent, "apartment rent", regionCode, yearMonth, rows,
		datasets.MapAptRent, func(t domain.AptRent) molit.RentObservation {
			return molit.RentObservation{LeaseType: t.LeaseType, Deposit: t.Deposit, MonthlyRent: t.MonthlyRent}
		})
}

// OffiRent returns officetel lease transactions.
func (s *DataService) OffiRent(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.OffiRent] {
	return runRent(ctx, s, s.endpoints.OffiRent, "officetel rent", regionCode, yearMonth, rows,
		datasets.MapOffiRent, func(t domain.OffiRent) molit.RentObservation {
			return molit.RentObservation{LeaseType: t.LeaseType, Deposit: t.Deposit, MonthlyRent: t.MonthlyRent}
		})
}

// VillaRent returns row-house lease transactions.
func (s *DataService) VillaRent(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.VillaRent] {
	return runRent(ctx, s, s.endpoints.VillaRent, "villa rent", regionCode, yearMonth, rows,
		datasets.MapVillaRent, func(t domain.VillaRent) molit.RentObservation {
			return molit.RentObservation{LeaseType: t.LeaseType, Deposit: t.Deposit, MonthlyRent: t.MonthlyRent}
		})
}

// HouseRent returns detached / multi-family house lease transactions.
func (s *DataService) HouseRent(ctx context.Context, regionCode, yearMonth string, rows int) domain.Result[domain.HouseRent] {
	return runRent(ctx, s, s.endpoints.HouseRent, "house rent", regionCode, yearMonth, rows,
		datasets.MapHouseRent, func(t domain.HouseRent) molit.RentObservation {
			return molit.RentObservation{LeaseType: t.LeaseType, Deposit: t.Deposit, MonthlyRent: t.MonthlyRent}
		})
}
