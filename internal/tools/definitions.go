package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kredata/internal/region"
	"kredata/internal/services"
)

// marketArgs is the shared argument set of the trade and rent tools.
type marketArgs struct {
	RegionCode string `json:"region_code" jsonschema:"description=법정동 앞 5자리 코드 (예: '11680' = 강남구). 모르면 먼저 get_region_code를 사용하세요."`
	YearMonth  string `json:"year_month" jsonschema:"description=거래년월 YYYYMM (예: '202506'). 현재 월은 get_current_year_month로 확인하세요."`
	NumOfRows  int    `json:"num_of_rows,omitempty" jsonschema:"description=최대 조회 건수 (기본 100; 최대 1000)"`
}

type auctionArgs struct {
	Sido           string `json:"sido,omitempty" jsonschema:"description=시도명 (예: '서울특별시'). 빈 값이면 전국 조회"`
	Sigungu        string `json:"sigungu,omitempty" jsonschema:"description=시군구명 (예: '강남구')"`
	UseCode        string `json:"use_code,omitempty" jsonschema:"description=물건 용도 코드. 목록은 get_onbid_use_codes 참고 (003=아파트)"`
	DisposalMethod string `json:"disposal_method,omitempty" jsonschema:"description=처분방법 (01=매각; 02=임대)"`
	MinPrice       int    `json:"min_price,omitempty" jsonschema:"description=최저입찰가 최솟값 (만원 단위)"`
	MaxPrice       int    `json:"max_price,omitempty" jsonschema:"description=최저입찰가 최댓값 (만원 단위; 0=제한없음)"`
	BidStartDate   string `json:"bid_start_date,omitempty" jsonschema:"description=입찰 시작일 YYYYMMDD"`
	BidEndDate     string `json:"bid_end_date,omitempty" jsonschema:"description=입찰 종료일 YYYYMMDD"`
	Keyword        string `json:"keyword,omitempty" jsonschema:"description=물건명 검색 키워드"`
	NumOfRows      int    `json:"num_of_rows,omitempty" jsonschema:"description=최대 조회 건수 (기본 50)"`
	PageNo         int    `json:"page_no,omitempty" jsonschema:"description=페이지 번호 (기본 1)"`
}

type permitArgs struct {
	SigunguCd string `json:"sigungu_cd" jsonschema:"description=시군구 5자리 코드 (법정동코드 앞 5자리)"`
	BjdongCd  string `json:"bjdong_cd" jsonschema:"description=법정동 5자리 코드 (법정동코드 뒤 5자리)"`
	Bun       string `json:"bun,omitempty" jsonschema:"description=번 (4자리; 예: '0012')"`
	Ji        string `json:"ji,omitempty" jsonschema:"description=지 (4자리)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"description=허가일 검색 시작일 YYYYMMDD"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"description=허가일 검색 종료일 YYYYMMDD"`
	NumOfRows int    `json:"num_of_rows,omitempty" jsonschema:"description=최대 조회 건수 (기본 100)"`
	PageNo    int    `json:"page_no,omitempty" jsonschema:"description=페이지 번호 (기본 1)"`
}

type regionArgs struct {
	Query string `json:"query" jsonschema:"description=검색할 지역명 (예: '강남구'; '서울 강남구'; '수원시'; '경기')"`
}

type noArgs struct{}

func (a auctionArgs) query() services.AuctionQuery {
	return services.AuctionQuery{
		Sido:           a.Sido,
		Sigungu:        a.Sigungu,
		UseCode:        a.UseCode,
		DisposalMethod: a.DisposalMethod,
		MinPrice:       a.MinPrice,
		MaxPrice:       a.MaxPrice,
		BidStartDate:   a.BidStartDate,
		BidEndDate:     a.BidEndDate,
		Keyword:        a.Keyword,
		Rows:           a.NumOfRows,
		PageNo:         a.PageNo,
	}
}

func (a permitArgs) query() services.PermitQuery {
	return services.PermitQuery{
		SigunguCd: a.SigunguCd,
		BjdongCd:  a.BjdongCd,
		Bun:       a.Bun,
		Ji:        a.Ji,
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		Rows:      a.NumOfRows,
		PageNo:    a.PageNo,
	}
}

func mustTool[T any](name, description string, handler func(ctx context.Context, args T) any) Tool {
	t, err := NewTool(name, description, handler)
	if err != nil {
		panic(err)
	}
	return t
}

// NewToolset builds the full tool registry over the data service.
func NewToolset(svc *services.DataService, timeout time.Duration, logger *slog.Logger) *Registry {
	r := NewRegistry(timeout, logger)

	r.Register(mustTool("get_apartment_trades",
		"아파트 매매 실거래가를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.AptTrades(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_officetel_trades",
		"오피스텔 매매 실거래가를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.OffiTrades(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_villa_trades",
		"빌라(연립/다세대) 매매 실거래가를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.VillaTrades(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_single_house_trades",
		"단독/다가구 매매 실거래가를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.HouseTrades(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_commercial_trades",
		"상업용/업무용 건물 매매 실거래가를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.CommercialTrades(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))

	r.Register(mustTool("get_apartment_rent",
		"아파트 전월세 실거래를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.AptRent(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_officetel_rent",
		"오피스텔 전월세 실거래를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.OffiRent(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_villa_rent",
		"빌라(연립/다세대) 전월세 실거래를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.VillaRent(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))
	r.Register(mustTool("get_single_house_rent",
		"단독/다가구 전월세 실거래를 조회합니다.",
		func(ctx context.Context, a marketArgs) any {
			return svc.HouseRent(ctx, a.RegionCode, a.YearMonth, a.NumOfRows)
		}))

	r.Register(mustTool("get_public_auction_items",
		"온비드(Onbid) 공매 물건 목록을 조회합니다.",
		func(ctx context.Context, a auctionArgs) any {
			return svc.AuctionItems(ctx, a.query())
		}))
	r.Register(mustTool("get_public_auction_bid_results",
		"온비드(Onbid) 공매 입찰 결과(낙찰가)를 조회합니다.",
		func(ctx context.Context, a auctionArgs) any {
			return svc.AuctionResults(ctx, a.query())
		}))
	r.Register(mustTool("get_onbid_use_codes",
		"온비드 공매 물건 용도 코드 목록을 반환합니다.",
		func(ctx context.Context, _ noArgs) any {
			useCodes, disposal := svc.AuctionCodes()
			return map[string]any{
				"use_codes":        useCodes,
				"disposal_methods": disposal,
				"usage":            "use_code 파라미터에 코드 값을 입력하세요. 예: '003' = 아파트",
			}
		}))

	r.Register(mustTool("get_building_permit_basis",
		"건축허가 기본개요를 조회합니다.",
		func(ctx context.Context, a permitArgs) any {
			return svc.PermitBasis(ctx, a.query())
		}))
	r.Register(mustTool("get_building_permit_parking",
		"건축허가 주차장 정보를 조회합니다.",
		func(ctx context.Context, a permitArgs) any {
			return svc.PermitParking(ctx, a.query())
		}))
	r.Register(mustTool("get_building_permit_zone",
		"건축허가 지역지구구역 정보를 조회합니다.",
		func(ctx context.Context, a permitArgs) any {
			return svc.PermitZone(ctx, a.query())
		}))
	r.Register(mustTool("get_building_permit_location",
		"건축허가 대지위치 정보를 조회합니다.",
		func(ctx context.Context, a permitArgs) any {
			return svc.PermitLocation(ctx, a.query())
		}))
	r.Register(mustTool("get_building_permit_housing_type",
		"건축허가 주택유형별 정보를 조회합니다.",
		func(ctx context.Context, a permitArgs) any {
			return svc.PermitHousing(ctx, a.query())
		}))

	r.Register(mustTool("get_region_code",
		"지역명을 법정동 코드(5자리)로 변환합니다. 실거래가 조회 전 먼저 사용하세요.",
		func(ctx context.Context, a regionArgs) any {
			return region.Search(a.Query)
		}))
	r.Register(mustTool("get_all_region_codes",
		"전체 지역 코드 목록을 반환합니다.",
		func(ctx context.Context, _ noArgs) any {
			codes := region.CodeMap()
			return map[string]any{
				"region_codes": codes,
				"total_count":  len(codes),
				"usage":        "반환된 코드를 get_apartment_trades 등의 region_code 파라미터에 사용하세요.",
			}
		}))
	r.Register(mustTool("get_current_year_month",
		"현재 년월을 YYYYMM 형식으로 반환합니다.",
		func(ctx context.Context, _ noArgs) any {
			ym := region.CurrentYearMonth()
			return map[string]string{
				"year_month":  ym,
				"description": fmt.Sprintf("현재 년월: %s년 %s월", ym[:4], ym[4:]),
				"tip":         "최신 데이터는 1-2개월 지연될 수 있으므로 이전 달도 함께 확인하세요.",
			}
		}))

	return r
}
