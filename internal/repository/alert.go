package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/proximity_alert_system/internal/models"
)

// AlertRepository хранит записи сработавших алертов в бд.
// Записи из бд ядром не чистятся - чистится только окно в памяти дебаунсера.
type AlertRepository struct {
	db *pgxpool.Pool
}

// NewAlertRepository создает репозиторий записей алертов
func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// AppendAlertRecord добавляет запись о сработавшем алерте
func (r *AlertRepository) AppendAlertRecord(ctx context.Context, record *models.AlertRecord) error {
	query := `
		INSERT INTO alert_records (id, remote_user_id, group_id, fired_at, acknowledged)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		record.ID,
		record.RemoteUserID,
		record.GroupID,
		record.FiredAt,
		record.Acknowledged,
	)
	if err != nil {
		return fmt.Errorf("failed to append alert record: %w", err)
	}
	return nil
}

// AcknowledgeAlert помечает запись алерта подтвержденной пользователем
func (r *AlertRepository) AcknowledgeAlert(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE alert_records SET acknowledged = true WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert record with id %s not found", id)
	}
	return nil
}
