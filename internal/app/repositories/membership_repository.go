package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mergington/activities/internal/app/models"
	"github.com/mergington/activities/internal/pkg/apperrors"
	"github.com/mergington/activities/internal/pkg/logger"
)

// MembershipRepository handles membership database operations
type MembershipRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db Querier) *MembershipRepository {
	return &MembershipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListAcceptedEmails retrieves the emails of all students holding an
// accepted membership to the activity, ordered by membership id so the
// roster is stable for a given database state.
func (r *MembershipRepository) ListAcceptedEmails(ctx context.Context, activityID int64) ([]string, error) {
	sql, args, err := r.sb.Select("s.email").
		From("memberships m").
		Join("students s ON s.id = m.student_id").
		Where(squirrel.Eq{"m.activity_id": activityID, "m.status": models.MembershipStatusAccepted}).
		OrderBy("m.id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list accepted emails SQL")
		return nil, fmt.Errorf("failed to build list accepted emails query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("activityID", activityID).Msg("Error executing list accepted emails query")
		return nil, fmt.Errorf("error querying accepted memberships: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			logger.Error().Err(err).Msg("Error scanning membership email row")
			return nil, fmt.Errorf("error scanning membership email row: %w", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating membership email rows")
		return nil, fmt.Errorf("error iterating membership email rows: %w", err)
	}

	return emails, nil
}

// GetByStudentAndActivity retrieves every membership row for the
// (student, activity) pair, one per signup attempt, oldest first.
func (r *MembershipRepository) GetByStudentAndActivity(ctx context.Context, studentID, activityID int64) ([]*models.Membership, error) {
	sql, args, err := r.sb.Select("id", "student_id", "activity_id", "status", "created_at", "updated_at").
		From("memberships").
		Where(squirrel.Eq{"student_id": studentID, "activity_id": activityID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get memberships by pair SQL")
		return nil, fmt.Errorf("failed to build get memberships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get memberships by pair query")
		return nil, fmt.Errorf("error querying memberships: %w", err)
	}
	defer rows.Close()

	memberships := []*models.Membership{}
	for rows.Next() {
		membership := &models.Membership{}
		if err := rows.Scan(
			&membership.ID,
			&membership.StudentID,
			&membership.ActivityID,
			&membership.Status,
			&membership.CreatedAt,
			&membership.UpdatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning membership row")
			return nil, fmt.Errorf("error scanning membership row: %w", err)
		}
		memberships = append(memberships, membership)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating membership rows")
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return memberships, nil
}

// CreateAccepted inserts an accepted membership only while the
// activity still has capacity. The capacity check and the insert run
// as one statement, so concurrent signups cannot push the accepted
// count past maxParticipants. Returns ErrActivityFull when the
// activity is at capacity.
func (r *MembershipRepository) CreateAccepted(ctx context.Context, studentID, activityID int64, maxParticipants int) (int64, error) {
	// squirrel cannot express the correlated capacity subquery, so this
	// one statement stays raw SQL.
	const sql = `
		INSERT INTO memberships (student_id, activity_id, status)
		SELECT $1, $2, $3
		WHERE (
			SELECT COUNT(*) FROM memberships
			WHERE activity_id = $2 AND status = $3
		) < $4
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, sql, studentID, activityID, models.MembershipStatusAccepted, maxParticipants).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrActivityFull
		}
		logger.Error().Err(err).Int64("studentID", studentID).Int64("activityID", activityID).Msg("Error executing create membership query")
		return 0, fmt.Errorf("error creating membership: %w", err)
	}

	return id, nil
}

// DeleteAccepted deletes the accepted membership for the
// (student, activity) pair. The student row itself is never deleted.
// Returns ErrNotSignedUp when no accepted membership exists.
func (r *MembershipRepository) DeleteAccepted(ctx context.Context, studentID, activityID int64) error {
	sql, args, err := r.sb.Delete("memberships").
		Where(squirrel.Eq{
			"student_id":  studentID,
			"activity_id": activityID,
			"status":      models.MembershipStatusAccepted,
		}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete membership SQL")
		return fmt.Errorf("failed to build delete membership query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Int64("activityID", activityID).Msg("Error executing delete membership query")
		return fmt.Errorf("error deleting membership: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotSignedUp
	}

	return nil
}
