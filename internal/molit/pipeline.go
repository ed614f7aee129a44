package molit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kredata/pkg/contracts/domain"
)

// Stage identifies where in the call lifecycle a request currently is. A
// call advances strictly forward; any failure moves it to StageError and
// the call terminates there.
type Stage string

const (
	StageBuilding    Stage = "building"
	StageDispatched  Stage = "dispatched"
	StageValidating  Stage = "validating"
	StageExtracting  Stage = "extracting"
	StageMapping     Stage = "mapping"
	StageAggregating Stage = "aggregating"
	StageDone        Stage = "done"
	StageError       Stage = "error"
)

// Format selects the envelope parser for a dataset family.
type Format int

const (
	FormatXML Format = iota
	FormatJSON
)

// Call describes one upstream request. Label names the dataset in error
// messages; it is caller-facing text, not an identifier.
type Call struct {
	Endpoint   string
	ServiceKey string
	Params     map[string]string
	Format     Format
	Label      string
}

const rawPrefixLimit = 500

// Run executes one full call lifecycle: build the signed query, dispatch
// it, validate the envelope, extract and map the items, then hand the
// result to the optional aggregate hook. Every failure mode is absorbed
// into the error shape of the returned Result; Run never returns a Go
// error and never retries.
func Run[T any](ctx context.Context, c *Client, call Call, mapFn func(Record) T, aggregate func(*domain.Result[T])) domain.Result[T] {
	stage := StageBuilding
	logger := c.logger.With(
		slog.String("dataset", call.Label),
		slog.String("endpoint", call.Endpoint),
	)

	if call.ServiceKey == "" {
		logger.WarnContext(ctx, "call rejected before dispatch",
			slog.String("stage", string(StageError)),
			slog.String("reason", "missing service key"),
		)
		return domain.Fail[T]("service key is not configured (set KRE_UPSTREAM_API_KEY)")
	}

	stage = StageDispatched
	start := time.Now()
	body, err := c.Get(ctx, call.Endpoint, call.ServiceKey, call.Params)
	c.observe(call.Label, err == nil, time.Since(start))
	if err != nil {
		logger.WarnContext(ctx, "call failed",
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()),
		)
		return domain.Fail[T](fmt.Sprintf("%s request failed (timeout or upstream error)", call.Label))
	}

	stage = StageValidating
	var env *Envelope
	switch call.Format {
	case FormatJSON:
		env, err = ParseJSONEnvelope(body)
	default:
		env, err = ParseXMLEnvelope(body)
	}
	if err != nil {
		logger.WarnContext(ctx, "call failed",
			slog.String("stage", string(stage)),
			slog.String("error", err.Error()),
		)
		return domain.FailRaw[T](
			fmt.Sprintf("failed to parse %s response: %v", call.Label, err),
			rawPrefix(body),
		)
	}
	if !env.OK() {
		logger.WarnContext(ctx, "call failed",
			slog.String("stage", string(stage)),
			slog.String("result_code", env.ResultCode),
			slog.String("result_msg", env.ResultMsg),
		)
		return domain.Fail[T](fmt.Sprintf("API error %s: %s", env.ResultCode, env.Message()))
	}

	stage = StageExtracting
	records := env.Items

	stage = StageMapping
	items := make([]T, 0, len(records))
	for _, rec := range records {
		items = append(items, mapFn(rec))
	}

	stage = StageAggregating
	result := domain.Result[T]{
		TotalCount:    env.TotalCount,
		ReturnedCount: len(items),
		Items:         items,
	}
	if aggregate != nil {
		aggregate(&result)
	}

	stage = StageDone
	logger.DebugContext(ctx, "call completed",
		slog.String("stage", string(stage)),
		slog.Int("total_count", result.TotalCount),
		slog.Int("returned_count", result.ReturnedCount),
	)
	return result
}

// rawPrefix keeps the first rawPrefixLimit characters of the body,
// truncating on a rune boundary so multi-byte Korean text is never split.
func rawPrefix(body []byte) string {
	runes := []rune(string(body))
	if len(runes) > rawPrefixLimit {
		return string(runes[:rawPrefixLimit])
	}
	return string(runes)
}
