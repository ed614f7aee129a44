package http

import (
	"context"

	"kredata/pkg/contracts/domain"
)

// ComplexEnricher matches apartment names to complex basis info. Satisfied
// by complexinfo.Service; narrowed here so handler tests can stub it.
type ComplexEnricher interface {
	Enrich(ctx context.Context, sigunguCode string, aptNames []string) (map[string]domain.ComplexInfo, error)
}
