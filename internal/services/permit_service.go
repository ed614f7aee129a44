package services

import (
	"context"
	"strconv"

	"kredata/internal/datasets"
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

// PermitQuery filters a building-permit call. SigunguCd is required; the
// rest narrows the search. An empty BjdongCd covers the whole sigungu.
type PermitQuery struct {
	SigunguCd string `json:"sigungu_cd"`
	BjdongCd  string `json:"bjdong_cd"`
	Bun       string `json:"bun"`
	Ji        string `json:"ji"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Rows      int    `json:"num_of_rows"`
	PageNo    int    `json:"page_no"`
}

func (q PermitQuery) params() map[string]string {
	params := map[string]string{
		"sigunguCd": q.SigunguCd,
		"bjdongCd":  q.BjdongCd,
		"_type":     "json",
		"numOfRows": strconv.Itoa(clampRows(q.Rows, defaultTradeRows)),
		"pageNo":    strconv.Itoa(pageOrDefault(q.PageNo)),
	}
	if q.Bun != "" {
		params["bun"] = q.Bun
	}
	if q.Ji != "" {
		params["ji"] = q.Ji
	}
	if q.StartDate != "" {
		params["startDate"] = q.StartDate
	}
	if q.EndDate != "" {
		params["endDate"] = q.EndDate
	}
	return params
}

func runPermit[T any](ctx context.Context, s *DataService, endpoint, label string, q PermitQuery, mapFn func(molit.Record) T) domain.Result[T] {
	res := molit.Run(ctx, s.client, molit.Call{
		Endpoint:   endpoint,
		ServiceKey: s.apiKey,
		Params:     q.params(),
		Format:     molit.FormatJSON,
		Label:      label,
	}, mapFn, nil)
	if !res.IsError() {
		res.SigunguCd = q.SigunguCd
		res.BjdongCd = q.BjdongCd
	}
	return res
}

// PermitBasis returns basic-outline permit records: areas, coverage and
// floor-area ratios, household counts, permit and approval dates.
func (s *DataService) PermitBasis(ctx context.Context, q PermitQuery) domain.Result[domain.PermitBasis] {
	return runPermit(ctx, s, s.endpoints.PermitBasis, "building permit basis", q, datasets.MapPermitBasis)
}

// PermitParking returns parking-lot permit records.
func (s *DataService) PermitParking(ctx context.Context, q PermitQuery) domain.Result[domain.PermitParking] {
	return runPermit(ctx, s, s.endpoints.PermitParking, "building permit parking", q, datasets.MapPermitParking)
}

// PermitZone returns land-use zone/district/area permit records.
func (s *DataService) PermitZone(ctx context.Context, q PermitQuery) domain.Result[domain.PermitZone] {
	return runPermit(ctx, s, s.endpoints.PermitZone, "building permit zone", q, datasets.MapPermitZone)
}

// PermitLocation returns site-location permit records.
func (s *DataService) PermitLocation(ctx context.Context, q PermitQuery) domain.Result[domain.PermitLocation] {
	return runPermit(ctx, s, s.endpoints.PermitLoc, "building permit location", q, datasets.MapPermitLocation)
}

// PermitHousing returns housing-type permit records.
func (s *DataService) PermitHousing(ctx context.Context, q PermitQuery) domain.Result[domain.PermitHousing] {
	return runPermit(ctx, s, s.endpoints.PermitHousing, "building permit housing type", q, datasets.MapPermitHousing)
}
