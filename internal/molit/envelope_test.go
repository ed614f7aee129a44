package molit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXMLEnvelope(t *testing.T) {
	t.Run("standard openapi body", func(t *testing.T) {
		body := []byte(`<response>
  <header><resultCode>000</resultCode><resultMsg>OK</resultMsg></header>
  <body>
    <items>
      <item><aptNm>래미안</aptNm><dealAmount>82,500</dealAmount></item>
      <item><aptNm>자이</aptNm><dealAmount>91,000</dealAmount></item>
    </items>
    <totalCount>2</totalCount>
  </body>
</response>`)
		env, err := ParseXMLEnvelope(body)
		require.NoError(t, err)
		assert.True(t, env.OK())
		assert.Equal(t, "000", env.ResultCode)
		assert.Equal(t, 2, env.TotalCount)
		require.Len(t, env.Items, 2)
		assert.Equal(t, "래미안", env.Items[0].Get("aptNm"))
		assert.Equal(t, "자이", env.Items[1].Get("aptNm"))
	})

	t.Run("bare error document", func(t *testing.T) {
		body := []byte(`<OpenAPI_ServiceResponse>
  <cmmMsgHeader>
    <resultCode>30</resultCode>
    <resultMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</resultMsg>
  </cmmMsgHeader>
</OpenAPI_ServiceResponse>`)
		env, err := ParseXMLEnvelope(body)
		require.NoError(t, err)
		assert.False(t, env.OK())
		assert.Equal(t, "30", env.ResultCode)
		assert.Equal(t, "SERVICE_KEY_IS_NOT_REGISTERED_ERROR", env.Message())
		assert.Empty(t, env.Items)
	})

	t.Run("missing totalCount defaults to zero", func(t *testing.T) {
		body := []byte(`<response><header><resultCode>00</resultCode></header><body><items/></body></response>`)
		env, err := ParseXMLEnvelope(body)
		require.NoError(t, err)
		assert.Equal(t, 0, env.TotalCount)
	})

	t.Run("missing resultCode is success", func(t *testing.T) {
		body := []byte(`<response><body><items><item><a>1</a></item></items></body></response>`)
		env, err := ParseXMLEnvelope(body)
		require.NoError(t, err)
		assert.True(t, env.OK())
		assert.Len(t, env.Items, 1)
	})

	t.Run("malformed markup", func(t *testing.T) {
		_, err := ParseXMLEnvelope([]byte(`<response><unclosed>`))
		assert.Error(t, err)
	})
}

func TestParseJSONEnvelope(t *testing.T) {
	t.Run("list items region", func(t *testing.T) {
		body := []byte(`{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL SERVICE"},
  "body":{"items":{"item":[{"platPlc":"서울"},{"platPlc":"부산"}]},"totalCount":14}}}`)
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		assert.True(t, env.OK())
		assert.Equal(t, 14, env.TotalCount)
		require.Len(t, env.Items, 2)
		assert.Equal(t, "서울", env.Items[0].Get("platPlc"))
	})

	t.Run("single object items region wraps to one element", func(t *testing.T) {
		body := []byte(`{"response":{"header":{"resultCode":"00"},
  "body":{"items":{"item":{"platPlc":"서울"}},"totalCount":1}}}`)
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		require.Len(t, env.Items, 1)
		assert.Equal(t, "서울", env.Items[0].Get("platPlc"))
	})

	t.Run("bare item region without items wrapper", func(t *testing.T) {
		body := []byte(`{"response":{"header":{"resultCode":"00"},
  "body":{"item":{"kaptCode":"A13801001","hoCnt":"1608"}}}}`)
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		require.Len(t, env.Items, 1)
		assert.Equal(t, "1608", env.Items[0].Get("hoCnt"))
	})

	t.Run("absent items region yields empty sequence", func(t *testing.T) {
		body := []byte(`{"response":{"header":{"resultCode":"00"},"body":{"totalCount":0}}}`)
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		assert.Empty(t, env.Items)
	})

	t.Run("numeric fields stringify without exponent", func(t *testing.T) {
		body := []byte(`{"response":{"header":{"resultCode":"00"},
  "body":{"items":{"item":[{"hhldCnt":1250,"totCnt":2.5}]},"totalCount":"1"}}}`)
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		assert.Equal(t, 1, env.TotalCount)
		require.Len(t, env.Items, 1)
		assert.Equal(t, "1250", env.Items[0].Get("hhldCnt"))
		assert.Equal(t, "2.5", env.Items[0].Get("totCnt"))
	})

	t.Run("domain error code with message", func(t *testing.T) {
		body := []byte(`{"response":{"header":{"resultCode":"99","resultMsg":"invalid key"}}}`)
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		assert.False(t, env.OK())
		assert.Equal(t, "99", env.ResultCode)
		assert.Equal(t, "invalid key", env.Message())
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseJSONEnvelope([]byte(`{"response":`))
		assert.Error(t, err)
	})
}

func TestDeepFindShallowestWins(t *testing.T) {
	// resultCode appears at two depths under sibling branches; the header
	// one is shallower and must win on every parse.
	body := []byte(`{"response":{
  "header":{"resultCode":"00"},
  "zbody":{"nested":{"extra":{"resultCode":"99"}}}}}`)

	for i := 0; i < 50; i++ {
		env, err := ParseJSONEnvelope(body)
		require.NoError(t, err)
		assert.Equal(t, "00", env.ResultCode)
	}
}

func TestRecordAliasProbing(t *testing.T) {
	t.Run("first non empty alias wins", func(t *testing.T) {
		rec := jsonRecord{"dealAmount": "", "거래금액": "82,500"}
		assert.Equal(t, "82,500", rec.Get("dealAmount", "거래금액"))
	})

	t.Run("absent under every alias", func(t *testing.T) {
		rec := jsonRecord{}
		assert.Equal(t, "", rec.Get("dealAmount", "거래금액"))
	})

	t.Run("xml record whitespace trimmed", func(t *testing.T) {
		root, err := parseXMLTree([]byte(`<item><aptNm>  래미안 </aptNm></item>`))
		require.NoError(t, err)
		rec := xmlRecord{n: root}
		assert.Equal(t, "래미안", rec.Get("aptNm"))
	})
}
