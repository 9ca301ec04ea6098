package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/proximity_alert_system/internal/models"
)

// MembershipRepository читает состояние членства и настроек пользователя.
// Сами данные принадлежат внешнему CRUD групп/профиля, ядро их не создает.
type MembershipRepository struct {
	db *pgxpool.Pool

	// Радиус по умолчанию для пользователей без строки настроек
	defaultRadiusMeters float64
}

// NewMembershipRepository создает репозиторий членства групп
func NewMembershipRepository(db *pgxpool.Pool, defaultRadiusMeters float64) *MembershipRepository {
	return &MembershipRepository{
		db:                  db,
		defaultRadiusMeters: defaultRadiusMeters,
	}
}

// ListActiveBroadcastGroups возвращает группы, в которые пользователь
// сейчас транслирует местоположение
func (r *MembershipRepository) ListActiveBroadcastGroups(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT group_id
		FROM group_members
		WHERE user_id = $1 AND is_broadcasting = true;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcast groups: %w", err)
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var groupID string
		if err := rows.Scan(&groupID); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, groupID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error group list iteration: %w", err)
	}
	return groups, nil
}

// SetBroadcasting переключает трансляцию пользователя в группе
func (r *MembershipRepository) SetBroadcasting(ctx context.Context, userID, groupID string, broadcasting bool) error {
	query := `
		UPDATE group_members SET is_broadcasting = $3 WHERE user_id = $1 AND group_id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, groupID, broadcasting)
	if err != nil {
		return fmt.Errorf("failed to set broadcasting state: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("membership for user %s in group %s not found", userID, groupID)
	}
	return nil
}

// GetNotificationPreferences возвращает настройки оповещений пользователя.
// Пользователь без строки настроек получает значения по умолчанию.
func (r *MembershipRepository) GetNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error) {
	prefs := &models.NotificationPreferences{}
	query := `
		SELECT
			enable_proximity_alerts,
			proximity_radius_meters,
			COALESCE(quiet_hours_start, ''),
			COALESCE(quiet_hours_end, ''),
			alert_style
		FROM notification_preferences
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.EnableProximityAlerts,
		&prefs.ProximityRadiusMeters,
		&prefs.QuietHoursStart,
		&prefs.QuietHoursEnd,
		&prefs.AlertStyle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.NotificationPreferences{
				EnableProximityAlerts: true,
				ProximityRadiusMeters: r.defaultRadiusMeters,
				AlertStyle:            models.AlertStyleBoth,
			}, nil
		}
		return nil, fmt.Errorf("failed to get notification preferences: %w", err)
	}
	return prefs, nil
}
