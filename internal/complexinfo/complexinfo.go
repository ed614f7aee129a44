// Package complexinfo enriches apartment names with per-complex basis
// data: a paged sigungu listing fan-out followed by a per-complex detail
// fan-out. Sub-request failures degrade to default records instead of
// failing the aggregate.
package complexinfo

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"kredata/internal/datasets"
	"kredata/internal/molit"
	"kredata/pkg/contracts/domain"
)

const listPageRows = 1000

var errNoKey = errors.New("service key is not configured")

// Service fetches complex listings and details through the gateway client.
type Service struct {
	client     *molit.Client
	serviceKey string
	logger     *slog.Logger

	listURL   string
	detailURL string
}

// NewService builds a complex-info service. The endpoint parameters exist
// for tests; zero values select the production endpoints.
func NewService(client *molit.Client, serviceKey string, logger *slog.Logger, listURL, detailURL string) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if listURL == "" {
		listURL = datasets.ComplexListURL
	}
	if detailURL == "" {
		detailURL = datasets.ComplexBasisURL
	}
	return &Service{
		client:     client,
		serviceKey: serviceKey,
		logger:     logger,
		listURL:    listURL,
		detailURL:  detailURL,
	}
}

var nameNoise = regexp.MustCompile(`[\s\-_·()（）]`)

// NormalizeName strips whitespace and decorative punctuation and lowers
// the rest, so "래미안 대치팰리스(1단지)" and "래미안대치팰리스1단지" compare equal.
func NormalizeName(name string) string {
	return strings.ToLower(nameNoise.ReplaceAllString(name, ""))
}

func (s *Service) fetchListPage(ctx context.Context, sigunguCode string, page int) (listings []domain.ComplexListing, total int) {
	body, err := s.client.Get(ctx, s.listURL, s.serviceKey, map[string]string{
		"sigunguCode": sigunguCode,
		"pageNo":      strconv.Itoa(page),
		"numOfRows":   strconv.Itoa(listPageRows),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "complex list page failed",
			slog.String("sigungu_code", sigunguCode),
			slog.Int("page", page),
			slog.String("error", err.Error()),
		)
		return nil, 0
	}
	env, err := molit.ParseJSONEnvelope(body)
	if err != nil || !env.OK() {
		return nil, 0
	}
	for _, rec := range env.Items {
		code := rec.Get("kaptCode")
		if code == "" {
			continue
		}
		name := rec.Get("kaptName")
		listings = append(listings, domain.ComplexListing{
			KaptCode: code,
			KaptName: name,
			NormName: NormalizeName(name),
			BjdCode:  rec.Get("bjdCode"),
			Addr:     joinNonEmpty(rec.Get("as1"), rec.Get("as2"), rec.Get("as3")),
		})
	}
	return listings, env.TotalCount
}

// FetchList returns every complex in a sigungu. The first page reveals the
// total; remaining pages are fetched concurrently. A failed page
// contributes nothing.
func (s *Service) FetchList(ctx context.Context, sigunguCode string) ([]domain.ComplexListing, error) {
	if s.serviceKey == "" {
		return nil, errNoKey
	}

	first, total := s.fetchListPage(ctx, sigunguCode, 1)
	listings := first
	if total > listPageRows {
		lastPage := (total + listPageRows - 1) / listPageRows
		pages := make([][]domain.ComplexListing, lastPage+1)
		g, gctx := errgroup.WithContext(ctx)
		for p := 2; p <= lastPage; p++ {
			g.Go(func() error {
				pages[p], _ = s.fetchListPage(gctx, sigunguCode, p)
				return nil
			})
		}
		g.Wait()
		for _, page := range pages {
			listings = append(listings, page...)
		}
	}
	return listings, nil
}

// FetchDetail returns per-complex basis info. Any failure degrades to a
// default detail carrying only the complex code.
func (s *Service) FetchDetail(ctx context.Context, kaptCode string) domain.ComplexDetail {
	body, err := s.client.Get(ctx, s.detailURL, s.serviceKey, map[string]string{
		"kaptCode": kaptCode,
	})
	if err != nil {
		return domain.ComplexDetail{KaptCode: kaptCode}
	}
	env, err := molit.ParseJSONEnvelope(body)
	if err != nil || !env.OK() || len(env.Items) == 0 {
		return domain.ComplexDetail{KaptCode: kaptCode}
	}
	rec := env.Items[0]
	return domain.ComplexDetail{
		KaptCode:  kaptCode,
		Units:     rec.Get("hoCnt"),
		DongCnt:   rec.Get("kaptDongCnt"),
		FloorMax:  rec.Get("ktownFlrNo"),
		FloorBase: rec.Get("kaptBaseFloor"),
		UseDate:   rec.Get("kaptUsedate"),
		Heat:      rec.Get("codeHeatNm"),
		Mgmt:      rec.Get("codeMgrNm"),
		Builder:   rec.Get("kaptBcompany"),
	}
}

// FetchDetails fetches details for all codes concurrently, keyed by code.
func (s *Service) FetchDetails(ctx context.Context, kaptCodes []string) map[string]domain.ComplexDetail {
	if len(kaptCodes) == 0 {
		return map[string]domain.ComplexDetail{}
	}
	details := make([]domain.ComplexDetail, len(kaptCodes))
	g, gctx := errgroup.WithContext(ctx)
	for i, code := range kaptCodes {
		g.Go(func() error {
			details[i] = s.FetchDetail(gctx, code)
			return nil
		})
	}
	g.Wait()

	out := make(map[string]domain.ComplexDetail, len(details))
	for _, d := range details {
		out[d.KaptCode] = d
	}
	return out
}

// Enrich matches apartment names against the sigungu listing and returns
// combined listing+detail info keyed by normalized name. A name matches
// exactly first, then by substring in either direction. Unmatched names
// are simply absent from the map; that is not an error.
func (s *Service) Enrich(ctx context.Context, sigunguCode string, aptNames []string) (map[string]domain.ComplexInfo, error) {
	listings, err := s.FetchList(ctx, sigunguCode)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, errors.New("no complexes listed for this region")
	}

	byNorm := make(map[string]domain.ComplexListing, len(listings))
	for _, l := range listings {
		byNorm[l.NormName] = l
	}

	matched := make(map[string]string) // normalized query name -> kaptCode
	for _, name := range uniqueNonEmpty(aptNames) {
		q := NormalizeName(name)
		if l, ok := byNorm[q]; ok {
			matched[q] = l.KaptCode
			continue
		}
		for norm, l := range byNorm {
			if strings.Contains(norm, q) || strings.Contains(q, norm) {
				matched[q] = l.KaptCode
				break
			}
		}
	}
	if len(matched) == 0 {
		return map[string]domain.ComplexInfo{}, nil
	}

	codes := make([]string, 0, len(matched))
	seen := make(map[string]bool, len(matched))
	for _, code := range matched {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	details := s.FetchDetails(ctx, codes)

	byCode := make(map[string]domain.ComplexListing, len(listings))
	for _, l := range listings {
		byCode[l.KaptCode] = l
	}

	out := make(map[string]domain.ComplexInfo, len(matched))
	for q, code := range matched {
		base := byCode[code]
		detail := details[code]
		out[q] = domain.ComplexInfo{
			KaptCode:  code,
			KaptName:  base.KaptName,
			BjdCode:   base.BjdCode,
			Addr:      base.Addr,
			Units:     detail.Units,
			DongCnt:   detail.DongCnt,
			FloorMax:  detail.FloorMax,
			FloorBase: detail.FloorBase,
			UseDate:   detail.UseDate,
			Heat:      detail.Heat,
			Mgmt:      detail.Mgmt,
			Builder:   detail.Builder,
		}
	}
	return out, nil
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func uniqueNonEmpty(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
