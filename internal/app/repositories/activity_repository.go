package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mergington/activities/internal/app/models"
	"github.com/mergington/activities/internal/pkg/apperrors"
	"github.com/mergington/activities/internal/pkg/dberrors"
	"github.com/mergington/activities/internal/pkg/logger"
)

// ActivityRepository handles activity database operations
type ActivityRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db Querier) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all activities ordered by creation (id ascending)
// so the listing is stable for a given database state.
func (r *ActivityRepository) GetAll(ctx context.Context) ([]*models.Activity, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "schedule", "max_participants", "image_url", "created_at", "updated_at").
		From("activities").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all activities SQL")
		return nil, fmt.Errorf("failed to build get all activities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all activities query")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		activity := &models.Activity{}
		if err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Description,
			&activity.Schedule,
			&activity.MaxParticipants,
			&activity.ImageURL,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning activity row during get all")
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating activity rows")
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// GetByName retrieves an activity by its unique name. The name is the
// external identifier used by clients.
func (r *ActivityRepository) GetByName(ctx context.Context, name string) (*models.Activity, error) {
	sql, args, err := r.sb.Select("id", "name", "description", "schedule", "max_participants", "image_url", "created_at", "updated_at").
		From("activities").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get activity by name SQL")
		return nil, fmt.Errorf("failed to build get activity query: %w", err)
	}

	activity := &models.Activity{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Schedule,
		&activity.MaxParticipants,
		&activity.ImageURL,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityNotFound
		}
		logger.Error().Err(err).Str("activityName", name).Msg("Error scanning activity row")
		return nil, fmt.Errorf("error getting activity by name: %w", err)
	}

	return activity, nil
}

// Create creates a new activity. Activities are seeded at startup;
// there is no public endpoint for this yet.
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) (int64, error) {
	sql, args, err := r.sb.Insert("activities").
		Columns("name", "description", "schedule", "max_participants").
		Values(activity.Name, activity.Description, activity.Schedule, activity.MaxParticipants).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create activity SQL")
		return 0, fmt.Errorf("failed to build create activity query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("activityName", activity.Name).Msg("Error executing create activity query")
		return 0, fmt.Errorf("error creating activity: %w", err)
	}

	return id, nil
}

// Count returns the total number of activities
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("activities").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count activities SQL")
		return 0, fmt.Errorf("failed to build count activities query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count activities query")
		return 0, fmt.Errorf("error counting activities: %w", err)
	}

	return count, nil
}
