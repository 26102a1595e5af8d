package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/google/uuid"
)

// DeliveryRepository records SMS send attempts, successful or not, for
// auditing. Failures to record are logged by callers and never abort a
// send batch.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery models.Delivery) (models.Delivery, error)
	FindByMemberID(ctx context.Context, memberID string) ([]models.Delivery, error)
}

type SQLiteDeliveryRepository struct {
	database *sql.DB
}

func NewDeliveryRepository(database *sql.DB) *SQLiteDeliveryRepository {
	return &SQLiteDeliveryRepository{database: database}
}

func (repository *SQLiteDeliveryRepository) Create(ctx context.Context, delivery models.Delivery) (models.Delivery, error) {
	if delivery.ID == "" {
		delivery.ID = uuid.New().String()
	}
	delivery.CreatedAt = time.Now().UTC()

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO deliveries (id, member_id, kind, provider_sid, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		delivery.ID, delivery.MemberID, delivery.Kind, delivery.ProviderSID, delivery.Error, delivery.CreatedAt,
	)
	if err != nil {
		return models.Delivery{}, fmt.Errorf("recording delivery: %w", err)
	}
	return delivery, nil
}

func (repository *SQLiteDeliveryRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.Delivery, error) {
	rows, err := repository.database.QueryContext(ctx,
		`SELECT id, member_id, kind, provider_sid, error, created_at
		FROM deliveries WHERE member_id = ? ORDER BY created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("finding deliveries by member: %w", err)
	}
	defer rows.Close()

	var deliveries []models.Delivery
	for rows.Next() {
		var delivery models.Delivery
		if err := rows.Scan(&delivery.ID, &delivery.MemberID, &delivery.Kind,
			&delivery.ProviderSID, &delivery.Error, &delivery.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning delivery: %w", err)
		}
		deliveries = append(deliveries, delivery)
	}
	return deliveries, rows.Err()
}
