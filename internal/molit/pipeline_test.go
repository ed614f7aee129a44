package molit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kredata/pkg/contracts/domain"
)

type testRow struct {
	Name   string `json:"name"`
	Amount *int64 `json:"amount"`
}

func mapTestRow(rec Record) testRow {
	return testRow{
		Name:   rec.Get("aptNm", "아파트"),
		Amount: ParseAmount(rec.Get("dealAmount", "거래금액")),
	}
}

func TestRunSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "secret", r.URL.Query().Get("serviceKey"))
		w.Write([]byte(`<response>
  <header><resultCode>000</resultCode><resultMsg>OK</resultMsg></header>
  <body>
    <items>
      <item><aptNm>래미안</aptNm><dealAmount>82,500</dealAmount></item>
      <item><아파트>자이</아파트><거래금액>91,000</거래금액></item>
    </items>
    <totalCount>2</totalCount>
  </body>
</response>`))
	}))
	defer srv.Close()

	c := NewClient(time.Second, nil)
	res := Run(context.Background(), c, Call{
		Endpoint:   srv.URL,
		ServiceKey: "secret",
		Params:     map[string]string{"LAWD_CD": "11680"},
		Format:     FormatXML,
		Label:      "apartment trades",
	}, mapTestRow, func(r *domain.Result[testRow]) {
		var amounts []int64
		for _, it := range r.Items {
			if it.Amount != nil {
				amounts = append(amounts, *it.Amount)
			}
		}
		r.PriceSummary = SummarizePrices(amounts)
	})

	require.False(t, res.IsError())
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 2, res.ReturnedCount)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "래미안", res.Items[0].Name)
	assert.Equal(t, "자이", res.Items[1].Name)
	require.NotNil(t, res.PriceSummary)
	assert.Equal(t, 86750.0, res.PriceSummary.Median)
}

func TestRunMissingCredentialSkipsNetwork(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := NewClient(time.Second, nil)
	res := Run(context.Background(), c, Call{
		Endpoint: srv.URL,
		Label:    "apartment trades",
	}, mapTestRow, nil)

	require.True(t, res.IsError())
	assert.Contains(t, res.Err.Message, "service key is not configured")
	assert.Equal(t, int32(0), hits.Load())
}

func TestRunTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(20*time.Millisecond, nil)
	res := Run(context.Background(), c, Call{
		Endpoint:   srv.URL,
		ServiceKey: "k",
		Format:     FormatXML,
		Label:      "apartment trades",
	}, mapTestRow, nil)

	require.True(t, res.IsError())
	assert.Equal(t, "apartment trades request failed (timeout or upstream error)", res.Err.Message)
}

func TestRunNonOKStatusIsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<response>
  <header><resultCode>00</resultCode><resultMsg>OK</resultMsg></header>
  <body><items><item><aptNm>래미안</aptNm></item></items><totalCount>1</totalCount></body>
</response>`))
	}))
	defer srv.Close()

	c := NewClient(time.Second, nil)
	res := Run(context.Background(), c, Call{
		Endpoint:   srv.URL,
		ServiceKey: "k",
		Format:     FormatXML,
		Label:      "apartment trades",
	}, mapTestRow, nil)

	require.True(t, res.IsError())
	assert.Equal(t, "apartment trades request failed (timeout or upstream error)", res.Err.Message)
}

func TestRunParseFailureCarriesRawPrefix(t *testing.T) {
	long := make([]byte, 0, 900)
	long = append(long, "<response><broken>"...)
	for len(long) < 900 {
		long = append(long, 'x')
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(long)
	}))
	defer srv.Close()

	c := NewClient(time.Second, nil)
	res := Run(context.Background(), c, Call{
		Endpoint:   srv.URL,
		ServiceKey: "k",
		Format:     FormatXML,
		Label:      "apartment trades",
	}, mapTestRow, nil)

	require.True(t, res.IsError())
	assert.Contains(t, res.Err.Message, "failed to parse apartment trades response")
	assert.Len(t, res.Err.Raw, 500)
}

func TestRawPrefixKeepsRuneBoundaries(t *testing.T) {
	var body []byte
	body = append(body, "깨진 응답 "...)
	for utf8.RuneCount(body) < 700 {
		body = append(body, "한"...)
	}

	got := rawPrefix(body)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 500, utf8.RuneCountInString(got))
}

func TestRunDomainErrorCombinesCodeAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<response><header><resultCode>99</resultCode><resultMsg>invalid key</resultMsg></header></response>`))
	}))
	defer srv.Close()

	c := NewClient(time.Second, nil)
	res := Run(context.Background(), c, Call{
		Endpoint:   srv.URL,
		ServiceKey: "k",
		Format:     FormatXML,
		Label:      "apartment trades",
	}, mapTestRow, nil)

	require.True(t, res.IsError())
	assert.Equal(t, "API error 99: invalid key", res.Err.Message)
}

func TestRunErrorEnvelopeMarshalShape(t *testing.T) {
	res := domain.Fail[testRow]("boom")
	data, err := res.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom"}`, string(data))
}
