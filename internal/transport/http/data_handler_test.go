package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "kredata/internal/errors"
	"kredata/internal/molit"
	"kredata/internal/services"
	"kredata/pkg/contracts/domain"
)

type stubEnricher struct {
	result map[string]domain.ComplexInfo
	err    error
}

func (s stubEnricher) Enrich(ctx context.Context, sigunguCode string, aptNames []string) (map[string]domain.ComplexInfo, error) {
	return s.result, s.err
}

func newTestRouter(t *testing.T, upstream http.Handler, enricher ComplexEnricher) chi.Router {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	eps := services.Endpoints{
		AptTrade:       srv.URL + "/apt-trade",
		AptRent:        srv.URL + "/apt-rent",
		OnbidThingInfo: srv.URL + "/onbid-things",
		OnbidBidResult: srv.URL + "/onbid-bids",
		PermitBasis:    srv.URL + "/permit-basis",
	}
	svc := services.NewDataService(molit.NewClient(time.Second, nil), "test-key", "", nil, eps)
	h := NewDataHandler(svc, enricher, nil, apierrors.NewErrorHandler(nil))
	return h.Routes()
}

func get(t *testing.T, router chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

const tradeXML = `<response><header><resultCode>000</resultCode></header><body>
<items><item><aptNm>래미안</aptNm><dealAmount>82,500</dealAmount></item></items>
<totalCount>1</totalCount></body></response>`

func TestGetTrades(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tradeXML))
	}), stubEnricher{})

	t.Run("success envelope", func(t *testing.T) {
		rec := get(t, router, "/trades?type=apt&region_code=11680&year_month=202406")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, float64(1), body["total_count"])
		assert.Equal(t, "11680", body["region_code"])
		assert.NotContains(t, body, "error")
	})

	t.Run("type defaults to apt", func(t *testing.T) {
		rec := get(t, router, "/trades?region_code=11680&year_month=202406")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing region_code", func(t *testing.T) {
		rec := get(t, router, "/trades?type=apt&year_month=202406")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"missing required parameter: region_code"}`, rec.Body.String())
	})

	t.Run("missing year_month", func(t *testing.T) {
		rec := get(t, router, "/trades?type=apt&region_code=11680")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown type lists valid set", func(t *testing.T) {
		rec := get(t, router, "/trades?type=mansion&region_code=11680&year_month=202406")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "apt, offi, villa, house, commercial")
	})

	t.Run("malformed region_code", func(t *testing.T) {
		rec := get(t, router, "/trades?type=apt&region_code=abc&year_month=202406")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-integer rows", func(t *testing.T) {
		rec := get(t, router, "/trades?type=apt&region_code=11680&year_month=202406&rows=ten")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTradesUpstreamFailureIsStill200(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<response><header><resultCode>99</resultCode><resultMsg>invalid key</resultMsg></header></response>`))
	}), stubEnricher{})

	rec := get(t, router, "/trades?type=apt&region_code=11680&year_month=202406")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"API error 99: invalid key"}`, rec.Body.String())
}

func TestGetRent(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<response><header><resultCode>000</resultCode></header><body>
<items><item><aptNm>자이</aptNm><deposit>10,000</deposit><monthlyRent>120</monthlyRent></item></items>
<totalCount>1</totalCount></body></response>`))
	}), stubEnricher{})

	t.Run("rent summary attached", func(t *testing.T) {
		rec := get(t, router, "/rent?type=apt&region_code=11680&year_month=202406")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "rent_summary")
		assert.NotContains(t, body, "price_summary")
	})

	t.Run("commercial is not a rent type", func(t *testing.T) {
		rec := get(t, router, "/rent?type=commercial&region_code=11680&year_month=202406")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "apt, offi, villa, house")
		assert.NotContains(t, body["error"], "commercial")
	})
}

func TestGetBuilding(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"header":{"resultCode":"00"},
"body":{"items":{"item":{"bldNm":"타워","platPlc":"도곡동"}},"totalCount":1}}}`))
	}), stubEnricher{})

	t.Run("basis records", func(t *testing.T) {
		rec := get(t, router, "/building?type=basis&sigungu_cd=11680&bjdong_cd=10300")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "11680", body["sigungu_cd"])
		assert.Equal(t, "10300", body["bjdong_cd"])
	})

	t.Run("both codes required", func(t *testing.T) {
		rec := get(t, router, "/building?type=basis&sigungu_cd=11680")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown building type", func(t *testing.T) {
		rec := get(t, router, "/building?type=roof&sigungu_cd=11680&bjdong_cd=10300")
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "basis, parking, zone, location, housing")
	})
}

func TestGetComplex(t *testing.T) {
	t.Run("matches returned", func(t *testing.T) {
		enricher := stubEnricher{result: map[string]domain.ComplexInfo{
			"은마": {KaptCode: "A2", KaptName: "은마", Units: "4424"},
		}}
		router := newTestRouter(t, http.NotFoundHandler(), enricher)

		rec := get(t, router, "/complex?region_code=11680&apt_names=은마,래미안")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			ComplexMap   map[string]domain.ComplexInfo `json:"complex_map"`
			MatchedCount int                           `json:"matched_count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.MatchedCount)
		assert.Equal(t, "4424", body.ComplexMap["은마"].Units)
	})

	t.Run("listing failure is soft", func(t *testing.T) {
		router := newTestRouter(t, http.NotFoundHandler(), stubEnricher{err: errors.New("no complexes listed for this region")})

		rec := get(t, router, "/complex?region_code=99999&apt_names=은마")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "no complexes listed for this region", body["error"])
	})

	t.Run("region_code required", func(t *testing.T) {
		router := newTestRouter(t, http.NotFoundHandler(), stubEnricher{})
		rec := get(t, router, "/complex?apt_names=은마")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetRegion(t *testing.T) {
	router := newTestRouter(t, http.NotFoundHandler(), stubEnricher{})

	t.Run("lookup", func(t *testing.T) {
		rec := get(t, router, "/region?q=강남구")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "11680", body["code"])
	})

	t.Run("q required", func(t *testing.T) {
		rec := get(t, router, "/region")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAuctions(t *testing.T) {
	router := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/onbid-things":
			w.Write([]byte(`{"response":{"header":{"resultCode":"00"},
"body":{"items":{"item":[{"cltrMngNo":"1","goodsNm":"아파트"}]},"totalCount":1}}}`))
		case "/onbid-bids":
			w.Write([]byte(`{"response":{"header":{"resultCode":"00"},
"body":{"items":{"item":[{"cltrMngNo":"1","minBidAmt":"10,000","sucsBidAmt":"11,500"}]},"totalCount":1}}}`))
		}
	}), stubEnricher{})

	t.Run("listings with code reference", func(t *testing.T) {
		rec := get(t, router, "/auctions?sido=서울특별시&use_code=003")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "use_code_reference")
	})

	t.Run("results with statistics", func(t *testing.T) {
		rec := get(t, router, "/auctions/results")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Statistics *domain.BidStats `json:"statistics"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Statistics)
		assert.Equal(t, 115.0, body.Statistics.AvgWinningRatePct)
	})

	t.Run("non-integer min_price", func(t *testing.T) {
		rec := get(t, router, "/auctions?min_price=lots")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("code tables", func(t *testing.T) {
		rec := get(t, router, "/auctions/codes")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "아파트", body["use_codes"]["003"])
		assert.Equal(t, "매각", body["disposal_methods"]["01"])
	})
}
