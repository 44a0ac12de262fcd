package queries

import (
	"context"

	"warehouse/internal/core/domain/model/process"

	"gorm.io/gorm"
)

// GetStatsQueryHandler computes the dashboard counters in one statement.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for the stats query.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStatsQueryHandler) Handle(
	ctx context.Context, query GetStatsQuery,
) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	var row struct {
		TotalProducts   int `gorm:"column:total_products"`
		InTransit       int `gorm:"column:in_transit"`
		Delivered       int `gorm:"column:delivered"`
		ActiveProcesses int `gorm:"column:active_processes"`
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM products) AS total_products,
			COUNT(*) FILTER (WHERE stage = ? AND status = ?) AS in_transit,
			COUNT(*) FILTER (WHERE status = ?) AS delivered,
			COUNT(*) FILTER (WHERE status IN ?) AS active_processes
		FROM processes
	`,
		int(process.StageFulfillment), int(process.InProgress),
		int(process.Completed),
		[]int{int(process.InProgress), int(process.Paused)},
	).Scan(&row).Error
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	return GetStatsQueryResponse{
		TotalProducts:   row.TotalProducts,
		InTransit:       row.InTransit,
		Delivered:       row.Delivered,
		ActiveProcesses: row.ActiveProcesses,
	}, nil
}
