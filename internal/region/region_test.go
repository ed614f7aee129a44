package region

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Run("district name resolves", func(t *testing.T) {
		got := Search("강남구")
		assert.Equal(t, "11680", got.Code)
		assert.Equal(t, "서울 강남구", got.Name)
		assert.NotEmpty(t, got.Candidates)
	})

	t.Run("city plus district exact match", func(t *testing.T) {
		got := Search("서울 강남구")
		assert.Equal(t, "11680", got.Code)
	})

	t.Run("whitespace insensitive", func(t *testing.T) {
		assert.Equal(t, Search("부산 해운대구").Code, Search("부산해운대구").Code)
		assert.Equal(t, "26350", Search("해운대구").Code)
	})

	t.Run("city query lists district candidates", func(t *testing.T) {
		got := Search("수원시")
		assert.NotEmpty(t, got.Code)
		require.NotEmpty(t, got.Candidates)
		assert.LessOrEqual(t, len(got.Candidates), 10)
		for _, c := range got.Candidates {
			assert.Contains(t, c.Name, "수원시")
		}
	})

	t.Run("broad query capped at ten candidates", func(t *testing.T) {
		got := Search("서울")
		assert.Len(t, got.Candidates, 10)
	})

	t.Run("no match yields hint", func(t *testing.T) {
		got := Search("아틀란티스")
		assert.Empty(t, got.Code)
		assert.Empty(t, got.Candidates)
		assert.NotEmpty(t, got.Hint)
	})

	t.Run("empty query yields hint", func(t *testing.T) {
		got := Search("   ")
		assert.Empty(t, got.Code)
		assert.NotEmpty(t, got.Hint)
	})
}

func TestRegionTable(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	codePat := regexp.MustCompile(`^\d{5}$`)
	seen := make(map[string]string, len(all))
	for _, r := range all {
		assert.Regexp(t, codePat, r.Code, "region %s", r.Name)
		prev, dup := seen[r.Code]
		assert.False(t, dup, "code %s shared by %s and %s", r.Code, prev, r.Name)
		seen[r.Code] = r.Name
	}
}

func TestCodeMap(t *testing.T) {
	codes := CodeMap()
	assert.Len(t, codes, len(All()))

	// Nationally unique gu names drop the province prefix.
	assert.Equal(t, "11680", codes["강남구"])
	assert.Equal(t, "26350", codes["해운대구"])
	assert.NotContains(t, codes, "서울 강남구")

	// "중구" exists in several metropolitan cities, so those entries
	// keep the prefixed key.
	assert.NotContains(t, codes, "중구")
	assert.Equal(t, "11140", codes["서울 중구"])
	assert.Equal(t, "26110", codes["부산 중구"])
}

func TestCurrentYearMonth(t *testing.T) {
	assert.Regexp(t, `^\d{6}$`, CurrentYearMonth())
}
