package search

import (
	"context"

	"gluca-api/internal/pkg/common"

	"go.uber.org/zap"
)

// User-facing messages attached to relaxed result sets.
const (
	carbRelaxedMessage     = "Could not find recipes within the carb target. Showing best matches instead."
	fallbackRelaxedMessage = "Could not find recipes using this item. Showing related recipes instead."
	upstreamFailureMessage = "Spoonacular request failed."
)

// Searcher executes one complexSearch call against the upstream recipe API.
type Searcher interface {
	ComplexSearch(ctx context.Context, params map[string]string) ([]common.RecipeSummary, error)
}

// Result is the outcome of a tiered search. MaxCarbs always reports the
// original carb target (when glucose was supplied), even after relaxation, so
// the UI can show what target was missed.
type Result struct {
	Results        []common.RecipeSummary `json:"results"`
	MaxCarbs       *int                   `json:"maxCarbs"`
	Relaxed        bool                   `json:"relaxed,omitempty"`
	RelaxedMessage string                 `json:"relaxedMessage,omitempty"`
	Error          string                 `json:"error,omitempty"`
}

// stage is the state of the relaxation chain. Stages run strictly
// sequentially; each transition depends on the previous result count.
type stage int

const (
	stageStrict stage = iota
	stageRelaxedCarbs
	stageFallbackQuery
	stageDone
)

func (s stage) String() string {
	switch s {
	case stageStrict:
		return "strict"
	case stageRelaxedCarbs:
		return "relaxed-carbs"
	case stageFallbackQuery:
		return "fallback-query"
	default:
		return "done"
	}
}

// nextStage is the pure transition function of the relaxation chain, applied
// only after a stage produced zero results (non-empty result sets and upstream
// errors are terminal before it runs).
func nextStage(current stage, hadMaxCarbs, hasQuery bool) stage {
	switch current {
	case stageStrict:
		if hadMaxCarbs {
			return stageRelaxedCarbs
		}
		if hasQuery {
			return stageFallbackQuery
		}
	case stageRelaxedCarbs:
		if hasQuery {
			return stageFallbackQuery
		}
	}
	return stageDone
}

// Orchestrator runs the three-tier relaxation strategy: strict filters, then
// the same filters without the carb cap, then a minimal free-text query. The
// carb cap is the most aggressive filter and the most likely to zero out
// results for niche ingredient combinations, so it is relaxed before the
// ingredient-based search is abandoned.
type Orchestrator struct {
	searcher Searcher
}

// NewOrchestrator creates a new search orchestrator.
func NewOrchestrator(searcher Searcher) *Orchestrator {
	return &Orchestrator{searcher: searcher}
}

// Search executes the tiered search. A rate-limit signal or an unreachable
// upstream is returned as an error without attempting further relaxation; any
// other upstream failure terminates the chain with the failure surfaced in
// Result.Error alongside an empty result list.
func (o *Orchestrator) Search(ctx context.Context, p QueryParams) (*Result, error) {
	filters := BuildFilters(p)
	hadMaxCarbs := filters.MaxCarbs > 0
	hasQuery := p.QueryText != ""

	result := &Result{Results: []common.RecipeSummary{}}
	if hadMaxCarbs {
		target := filters.MaxCarbs
		result.MaxCarbs = &target
	}

	current := stageStrict
	for current != stageDone {
		var params map[string]string
		switch current {
		case stageStrict:
			params = withRanking(filters.Values())
		case stageRelaxedCarbs:
			params = withRanking(filters.WithoutMaxCarbs().Values())
		case stageFallbackQuery:
			params = FallbackFilters(p.QueryText, p.MealType).Values()
		}

		results, err := o.searcher.ComplexSearch(ctx, params)
		if err != nil {
			if common.HasCode(err, common.ErrCodeRateLimited) || common.HasCode(err, common.ErrCodeUpstreamUnreachable) {
				common.LogError("search tier aborted",
					zap.String("stage", current.String()),
					zap.Error(err),
				)
				return nil, err
			}
			common.LogError("search tier failed",
				zap.String("stage", current.String()),
				zap.Error(err),
			)
			result.Error = upstreamFailureMessage
			return result, nil
		}

		common.LogInfo("search tier executed",
			zap.String("stage", current.String()),
			zap.Int("results", len(results)),
		)

		if len(results) > 0 {
			result.Results = results
			switch current {
			case stageRelaxedCarbs:
				result.Relaxed = true
				result.RelaxedMessage = carbRelaxedMessage
			case stageFallbackQuery:
				result.Relaxed = true
				result.RelaxedMessage = fallbackRelaxedMessage
			}
			return result, nil
		}

		current = nextStage(current, hadMaxCarbs, hasQuery)
	}

	// All tiers exhausted: an empty list is a normal outcome, not an error.
	return result, nil
}

// withRanking adds the most-used-ingredients ranking instruction used by the
// ingredient-based tiers. Ranking is computed upstream, not locally.
func withRanking(params map[string]string) map[string]string {
	params["sort"] = "max-used-ingredients"
	params["sortDirection"] = "desc"
	return params
}
