// Package region resolves human-readable administrative-division names to
// the 5-digit codes the gateway filters on.
package region

import (
	"strings"
	"time"
)

const maxCandidates = 10

// Match is one lookup outcome. Code and Name identify the best match;
// Candidates lists similar divisions for disambiguation. An unmatched
// query yields empty Code/Name with a hint message.
type Match struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Candidates []Region `json:"candidates"`
	Hint       string   `json:"hint,omitempty"`
}

func norm(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Search resolves a division name. Exact name match wins; otherwise the
// first division whose name contains the query (or vice versa) is chosen
// and all such divisions are offered as candidates, capped at ten.
func Search(query string) Match {
	q := norm(query)
	if q == "" {
		return Match{Hint: "검색어를 입력하세요. 예: '강남구', '서울 강남구', '수원시'"}
	}

	var candidates []Region
	best := -1
	for i, r := range regions {
		n := norm(r.Name)
		if n == q {
			best = i
			candidates = append([]Region{r}, candidates...)
			continue
		}
		if strings.Contains(n, q) || strings.Contains(q, n) {
			if best < 0 {
				best = i
			}
			if len(candidates) < maxCandidates {
				candidates = append(candidates, r)
			}
		}
	}
	if best < 0 {
		return Match{Hint: "일치하는 지역이 없습니다. 시/군/구 이름으로 다시 검색하세요."}
	}
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return Match{
		Code:       regions[best].Code,
		Name:       regions[best].Name,
		Candidates: candidates,
	}
}

// CurrentYearMonth returns the current month as YYYYMM, the gateway's
// transaction-month filter format.
func CurrentYearMonth() string {
	return time.Now().Format("200601")
}
