package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "kredata/internal/errors"
	"kredata/internal/region"
	"kredata/internal/services"
	"kredata/pkg/contracts/domain"
)

// DataHandler serves the dataset endpoints. Every upstream or pipeline
// failure still renders as HTTP 200 with the error envelope; only
// caller-parameter problems produce 400s.
type DataHandler struct {
	service      *services.DataService
	complexes    ComplexEnricher
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewDataHandler creates the dataset handler.
func NewDataHandler(service *services.DataService, complexes ComplexEnricher, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataHandler{
		service:      service,
		complexes:    complexes,
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the dataset routes.
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/trades", h.GetTrades)
	r.Get("/rent", h.GetRent)
	r.Get("/building", h.GetBuilding)
	r.Get("/complex", h.GetComplex)
	r.Get("/region", h.GetRegion)
	r.Get("/auctions", h.GetAuctions)
	r.Get("/auctions/results", h.GetAuctionResults)
	r.Get("/auctions/codes", h.GetAuctionCodes)

	return r
}

// marketQuery is the parameter set shared by trades and rent.
type marketQuery struct {
	Type       string `validate:"required"`
	RegionCode string `validate:"required,len=5,numeric"`
	YearMonth  string `validate:"required,len=6,numeric"`
	Rows       int    `validate:"gte=0,lte=1000"`
}

func (h *DataHandler) marketQueryFrom(r *http.Request, defType string) (marketQuery, *apierrors.APIError) {
	q := r.URL.Query()
	mq := marketQuery{
		Type:       strings.ToLower(strings.TrimSpace(q.Get("type"))),
		RegionCode: strings.TrimSpace(q.Get("region_code")),
		YearMonth:  strings.TrimSpace(q.Get("year_month")),
	}
	if mq.Type == "" {
		mq.Type = defType
	}
	if mq.RegionCode == "" {
		return mq, apierrors.ErrMissingParam("region_code")
	}
	if mq.YearMonth == "" {
		return mq, apierrors.ErrMissingParam("year_month")
	}
	if raw := q.Get("rows"); raw != "" {
		rows, err := strconv.Atoi(raw)
		if err != nil {
			return mq, apierrors.ErrInvalidParam("rows", "must be an integer")
		}
		mq.Rows = rows
	}
	if err := h.validate.Struct(mq); err != nil {
		return mq, apierrors.ErrInvalidParam(strings.ToLower(firstFieldError(err)), "malformed value")
	}
	return mq, nil
}

// firstFieldError extracts the first failing field name from a
// validator error for the flat error message.
func firstFieldError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "RegionCode":
			return "region_code"
		case "YearMonth":
			return "year_month"
		case "Rows":
			return "rows"
		default:
			return verrs[0].Field()
		}
	}
	return "request"
}

var tradeTypes = []string{"apt", "offi", "villa", "house", "commercial"}

// GetTrades handles GET /api/trades?type=&region_code=&year_month=&rows=.
func (h *DataHandler) GetTrades(w http.ResponseWriter, r *http.Request) {
	mq, apiErr := h.marketQueryFrom(r, "apt")
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	ctx := r.Context()
	switch mq.Type {
	case "apt":
		render.JSON(w, r, h.service.AptTrades(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "offi":
		render.JSON(w, r, h.service.OffiTrades(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "villa":
		render.JSON(w, r, h.service.VillaTrades(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "house":
		render.JSON(w, r, h.service.HouseTrades(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "commercial":
		render.JSON(w, r, h.service.CommercialTrades(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	default:
		h.errorHandler.HandleError(w, r, apierrors.ErrUnknownType(tradeTypes))
	}
}

var rentTypes = []string{"apt", "offi", "villa", "house"}

// GetRent handles GET /api/rent?type=&region_code=&year_month=&rows=.
func (h *DataHandler) GetRent(w http.ResponseWriter, r *http.Request) {
	mq, apiErr := h.marketQueryFrom(r, "apt")
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}

	ctx := r.Context()
	switch mq.Type {
	case "apt":
		render.JSON(w, r, h.service.AptRent(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "offi":
		render.JSON(w, r, h.service.OffiRent(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "villa":
		render.JSON(w, r, h.service.VillaRent(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	case "house":
		render.JSON(w, r, h.service.HouseRent(ctx, mq.RegionCode, mq.YearMonth, mq.Rows))
	default:
		h.errorHandler.HandleError(w, r, apierrors.ErrUnknownType(rentTypes))
	}
}

var buildingTypes = []string{"basis", "parking", "zone", "location", "housing"}

// GetBuilding handles GET /api/building?type=&sigungu_cd=&bjdong_cd=&....
func (h *DataHandler) GetBuilding(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	buildingType := strings.ToLower(strings.TrimSpace(q.Get("type")))
	if buildingType == "" {
		buildingType = "basis"
	}

	pq := services.PermitQuery{
		SigunguCd: strings.TrimSpace(q.Get("sigungu_cd")),
		BjdongCd:  strings.TrimSpace(q.Get("bjdong_cd")),
		Bun:       strings.TrimSpace(q.Get("bun")),
		Ji:        strings.TrimSpace(q.Get("ji")),
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
	}
	if pq.SigunguCd == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingParam("sigungu_cd"))
		return
	}
	if pq.BjdongCd == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingParam("bjdong_cd"))
		return
	}
	if raw := q.Get("rows"); raw != "" {
		rows, err := strconv.Atoi(raw)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrInvalidParam("rows", "must be an integer"))
			return
		}
		pq.Rows = rows
	}

	ctx := r.Context()
	switch buildingType {
	case "basis":
		render.JSON(w, r, h.service.PermitBasis(ctx, pq))
	case "parking":
		render.JSON(w, r, h.service.PermitParking(ctx, pq))
	case "zone":
		render.JSON(w, r, h.service.PermitZone(ctx, pq))
	case "location":
		render.JSON(w, r, h.service.PermitLocation(ctx, pq))
	case "housing":
		render.JSON(w, r, h.service.PermitHousing(ctx, pq))
	default:
		h.errorHandler.HandleError(w, r, apierrors.ErrUnknownType(buildingTypes))
	}
}

// complexResponse is the enrichment envelope: matches keyed by
// normalized complex name plus a soft error when the whole listing step
// failed.
type complexResponse struct {
	ComplexMap   map[string]domain.ComplexInfo `json:"complex_map"`
	MatchedCount int                           `json:"matched_count"`
	Error        string                        `json:"error,omitempty"`
}

// GetComplex handles GET /api/complex?region_code=&apt_names=a,b,c.
func (h *DataHandler) GetComplex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	regionCode := strings.TrimSpace(q.Get("region_code"))
	if regionCode == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingParam("region_code"))
		return
	}

	var aptNames []string
	for _, n := range strings.Split(q.Get("apt_names"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			aptNames = append(aptNames, n)
		}
	}

	complexMap, err := h.complexes.Enrich(r.Context(), regionCode, aptNames)
	resp := complexResponse{ComplexMap: complexMap, MatchedCount: len(complexMap)}
	if err != nil {
		// Listing failures are soft: a 200 with the error text, matching
		// the dataset error-envelope convention.
		resp.ComplexMap = map[string]domain.ComplexInfo{}
		resp.Error = err.Error()
	}
	render.JSON(w, r, resp)
}

// GetRegion handles GET /api/region?q=.
func (h *DataHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrMissingParam("q"))
		return
	}
	render.JSON(w, r, region.Search(q))
}

func auctionQueryFrom(r *http.Request) (services.AuctionQuery, *apierrors.APIError) {
	q := r.URL.Query()
	aq := services.AuctionQuery{
		Sido:           strings.TrimSpace(q.Get("sido")),
		Sigungu:        strings.TrimSpace(q.Get("sigungu")),
		UseCode:        strings.TrimSpace(q.Get("use_code")),
		DisposalMethod: strings.TrimSpace(q.Get("disposal_method")),
		BidStartDate:   strings.TrimSpace(q.Get("bid_start_date")),
		BidEndDate:     strings.TrimSpace(q.Get("bid_end_date")),
		Keyword:        strings.TrimSpace(q.Get("keyword")),
	}
	for name, dst := range map[string]*int{
		"min_price": &aq.MinPrice,
		"max_price": &aq.MaxPrice,
		"rows":      &aq.Rows,
		"page_no":   &aq.PageNo,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return aq, apierrors.ErrInvalidParam(name, "must be an integer")
		}
		*dst = v
	}
	return aq, nil
}

// GetAuctions handles GET /api/auctions with optional Onbid filters.
func (h *DataHandler) GetAuctions(w http.ResponseWriter, r *http.Request) {
	aq, apiErr := auctionQueryFrom(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}
	render.JSON(w, r, h.service.AuctionItems(r.Context(), aq))
}

// GetAuctionResults handles GET /api/auctions/results.
func (h *DataHandler) GetAuctionResults(w http.ResponseWriter, r *http.Request) {
	aq, apiErr := auctionQueryFrom(r)
	if apiErr != nil {
		h.errorHandler.HandleError(w, r, apiErr)
		return
	}
	render.JSON(w, r, h.service.AuctionResults(r.Context(), aq))
}

// GetAuctionCodes handles GET /api/auctions/codes.
func (h *DataHandler) GetAuctionCodes(w http.ResponseWriter, r *http.Request) {
	useCodes, disposal := h.service.AuctionCodes()
	render.JSON(w, r, map[string]any{
		"use_codes":        useCodes,
		"disposal_methods": disposal,
	})
}
