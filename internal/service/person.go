package service

import (
	"context"
	"time"

	"github.com/Payphone-Digital/roster/internal/constants"
	apperrors "github.com/Payphone-Digital/roster/internal/errors"
	"github.com/Payphone-Digital/roster/internal/query"
	"github.com/Payphone-Digital/roster/internal/repository"
	ctxutil "github.com/Payphone-Digital/roster/pkg/context"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/Payphone-Digital/roster/pkg/metrics"
)

// PersonService answers paged, filtered, sorted queries over a PersonStore.
// It keeps no per-request state and is safe for concurrent use.
type PersonService struct {
	store repository.PersonStore
}

func NewPersonService(store repository.PersonStore) *PersonService {
	return &PersonService{store: store}
}

// Meta describes the values a query accepts for its enumerated parameters.
type Meta struct {
	Statuses        []string `json:"statuses"`
	SortFields      []string `json:"sort_fields"`
	SortDirections  []string `json:"sort_directions"`
	DefaultPageSize int      `json:"default_page_size"`
	MaxPageSize     int      `json:"max_page_size"`
}

// Query validates req, fetches the collection once, then filters, sorts and
// pages it. Store errors are returned unchanged.
func (s *PersonService) Query(ctx context.Context, req query.Request) (*query.Result, error) {
	ctx = ctxutil.WithFunction(ctx, "service", "Query")
	start := time.Now()

	logger.DebugWithContext(ctx, "Query persons").
		Int("page", req.Page).
		Int("page_size", req.PageSize).
		String("search", req.Search).
		String("status", req.Status).
		String("sort", req.SortField).
		String("order", req.SortDirection).
		Log()

	plan, err := req.Resolve()
	if err != nil {
		logger.WarnWithContext(ctx, "Rejected query request").
			String("code", apperrors.GetErrorCode(err)).
			Err(err).
			Log()
		metrics.ObserveQuery(apperrors.GetErrorCode(err), time.Since(start).Seconds(), -1)
		return nil, err
	}

	records, err := s.store.FetchAll(ctx)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch persons").
			Err(err).
			Log()
		outcome := apperrors.GetErrorCode(err)
		if outcome == "" {
			outcome = "error"
		}
		metrics.ObserveQuery(outcome, time.Since(start).Seconds(), -1)
		return nil, err
	}

	filtered := query.Filter(records, plan.Predicate)
	sorted := query.Sort(filtered, plan.SortField, plan.Direction)

	window, err := query.Paginate(sorted, plan.Page, plan.PageSize)
	if err != nil {
		// Resolve already rejected non-positive sizes
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	result := &query.Result{
		Items:      window.Items,
		Total:      window.Total,
		Page:       window.Page,
		PageSize:   plan.PageSize,
		TotalPages: window.TotalPages,
	}

	duration := time.Since(start)
	metrics.ObserveQuery("ok", duration.Seconds(), result.Total)

	logger.InfoWithContext(ctx, "Query completed").
		Int("records", len(records)).
		Int("total", result.Total).
		Int("page", result.Page).
		Int("total_pages", result.TotalPages).
		Int("items", len(result.Items)).
		Duration(duration).
		Log()

	return result, nil
}

// Statuses returns the recognized status filter values, "all" first.
func (s *PersonService) Statuses() []string {
	return query.StatusFilters()
}

// SortFields returns the recognized sort field names.
func (s *PersonService) SortFields() []string {
	return query.SortFieldNames()
}

// Meta bundles the enumerations a client needs to build a query.
func (s *PersonService) Meta() Meta {
	return Meta{
		Statuses:        s.Statuses(),
		SortFields:      s.SortFields(),
		SortDirections:  query.DirectionNames(),
		DefaultPageSize: query.DefaultRequest().PageSize,
		MaxPageSize:     constants.MaxPageSize,
	}
}
