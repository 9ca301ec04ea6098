package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/proximity_alert_system/internal/models"
)

// TaskStateRepository - долговременное key-value состояние фоновой задачи:
// последний известный фикс и карта последних фоновых оповещений.
// Переживает перезапуск процесса.
type TaskStateRepository struct {
	db *pgxpool.Pool
}

// NewTaskStateRepository создает репозиторий состояния фоновой задачи
func NewTaskStateRepository(db *pgxpool.Pool) *TaskStateRepository {
	return &TaskStateRepository{db: db}
}

// GetLastKnownFix возвращает последний сохраненный фикс пользователя.
// (nil, nil), если сохраненного фикса еще нет.
func (r *TaskStateRepository) GetLastKnownFix(ctx context.Context, userID string) (*models.Fix, error) {
	var raw []byte
	query := `
		SELECT last_fix FROM task_state WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last known fix: %w", err)
	}

	fix := &models.Fix{}
	if err := json.Unmarshal(raw, fix); err != nil {
		return nil, fmt.Errorf("failed to unmarshal last known fix: %w", err)
	}
	return fix, nil
}

// SaveLastKnownFix сохраняет последний фикс пользователя
func (r *TaskStateRepository) SaveLastKnownFix(ctx context.Context, userID string, fix models.Fix) error {
	raw, err := json.Marshal(fix)
	if err != nil {
		return fmt.Errorf("failed to marshal last known fix: %w", err)
	}

	query := `
		INSERT INTO task_state (user_id, last_fix, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET last_fix = $2, updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("failed to save last known fix: %w", err)
	}
	return nil
}

// ListLastNotified возвращает отметки последних фоновых оповещений пользователя
func (r *TaskStateRepository) ListLastNotified(ctx context.Context, userID string) ([]models.LastNotified, error) {
	query := `
		SELECT remote_user_id, group_id, notified_at
		FROM task_notified
		WHERE user_id = $1;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list last notified: %w", err)
	}
	defer rows.Close()

	entries := make([]models.LastNotified, 0)
	for rows.Next() {
		entry := models.LastNotified{}
		if err := rows.Scan(&entry.RemoteUserID, &entry.GroupID, &entry.NotifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan last notified row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error last notified iteration: %w", err)
	}
	return entries, nil
}

// SetLastNotified фиксирует отметку фонового оповещения для пары
func (r *TaskStateRepository) SetLastNotified(ctx context.Context, userID, remoteUserID, groupID string, notifiedAt time.Time) error {
	query := `
		INSERT INTO task_notified (user_id, remote_user_id, group_id, notified_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, remote_user_id, group_id) DO UPDATE SET notified_at = $4;
	`
	if _, err := r.db.Exec(ctx, query, userID, remoteUserID, groupID, notifiedAt); err != nil {
		return fmt.Errorf("failed to set last notified: %w", err)
	}
	return nil
}

// EvictLastNotified удаляет отметки старше порога выселения
func (r *TaskStateRepository) EvictLastNotified(ctx context.Context, userID string, olderThan time.Time) error {
	query := `
		DELETE FROM task_notified WHERE user_id = $1 AND notified_at < $2;
	`
	if _, err := r.db.Exec(ctx, query, userID, olderThan); err != nil {
		return fmt.Errorf("failed to evict last notified entries: %w", err)
	}
	return nil
}
