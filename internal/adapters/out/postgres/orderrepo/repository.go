package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/core/ports"
	"ordertracking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Save writes the order row and its new history rows in one transaction so a
// status and its audit entry never diverge.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves an order with its full history by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the aggregate's current state. The order row is upserted and
// history rows are inserted with conflict-ignore, which suits an append-only
// history: existing entries never change, only new ones are added.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	events := dto.History
	dto.History = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&dto).Error; err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "seq"}},
			DoNothing: true,
		}).Create(&events).Error
	})
}

// FindStaleShipped retrieves all shipped orders whose last update happened
// strictly before the threshold.
func (r *GormOrderRepository) FindStaleShipped(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("status = ? AND updated_at < ?", order.Shipped.String(), before).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindByQuery retrieves the page of orders matching the normalized search.
// The sort column comes from the query's closed whitelist, never from raw
// caller input.
func (r *GormOrderRepository) FindByQuery(ctx context.Context, query ports.OrderSearchQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		})

	if contains := query.OrderIDContains(); contains != "" {
		tx = tx.Where("id ILIKE ?", "%"+contains+"%")
	}
	if contains := query.CustomerIDContains(); contains != "" {
		tx = tx.Where("customer_id ILIKE ?", "%"+contains+"%")
	}
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", status.String())
	}
	if from := query.UpdatedFrom(); from != nil {
		tx = tx.Where("updated_at >= ?", *from)
	}
	if to := query.UpdatedTo(); to != nil {
		tx = tx.Where("updated_at <= ?", *to)
	}

	tx = tx.Order(sortClause(query)).
		Offset(query.Page() * query.Size()).
		Limit(query.Size())

	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func sortClause(query ports.OrderSearchQuery) string {
	column := "updated_at"
	if query.SortBy() == ports.SortByCreatedAt {
		column = "created_at"
	}

	direction := "DESC"
	if query.SortDir() == ports.SortDirAsc {
		direction = "ASC"
	}

	return column + " " + direction
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
