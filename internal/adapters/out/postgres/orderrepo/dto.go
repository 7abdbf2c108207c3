// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordertracking/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire strings so the rows stay readable and the
// status filter queries stay index-friendly.
type OrderDTO struct {
	ID         string             `gorm:"type:text;primaryKey"`
	CustomerID string             `gorm:"type:text;index"`
	Status     string             `gorm:"type:text;index"`
	CreatedAt  time.Time          `gorm:"index"`
	UpdatedAt  time.Time          `gorm:"index"`
	History    []TrackingEventDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TrackingEventDTO represents one append-only history row. Seq is the
// zero-based position within the order's history; together with the order id
// it forms the primary key, which makes re-saving an aggregate idempotent for
// rows that already exist.
type TrackingEventDTO struct {
	OrderID    string `gorm:"type:text;primaryKey"`
	Seq        int    `gorm:"primaryKey;autoIncrement:false"`
	Status     string `gorm:"type:text"`
	OccurredAt time.Time
	Note       string `gorm:"type:text"`
}

// TableName specifies the database table name for history entries.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts an order domain aggregate to its database representation,
// including the full history in chronological order.
func fromDomain(aggregate *order.Order) OrderDTO {
	history := aggregate.History()
	events := make([]TrackingEventDTO, 0, len(history))
	for seq, event := range history {
		events = append(events, TrackingEventDTO{
			OrderID:    event.OrderID(),
			Seq:        seq,
			Status:     event.Status(),
			OccurredAt: event.OccurredAt(),
			Note:       event.Note(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		History:    events,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.TrackingEvent, 0, len(dto.History))
	for _, eventDTO := range dto.History {
		event, eventErr := order.NewTrackingEvent(
			eventDTO.OrderID,
			eventDTO.Status,
			eventDTO.OccurredAt.UTC(),
			eventDTO.Note,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		history = append(history, event)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		status,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
		history,
	)
}
