package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves the dashboard counters. Counters are recomputed
// from the store on every call; nothing is cached.
type GetStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a parameterless stats query.
func NewGetStatsQuery() GetStatsQuery {
	return GetStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// GetStatsQueryResponse carries the dashboard counters.
type GetStatsQueryResponse struct {
	// TotalProducts counts every product ever registered.
	TotalProducts int
	// InTransit counts processes sitting at event 3 with status in_progress.
	InTransit int
	// Delivered counts processes with status completed.
	Delivered int
	// ActiveProcesses counts processes with status in_progress or paused.
	ActiveProcesses int
}
