package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities/internal/app/models"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

// ActivityRepository is the slice of the persistence gateway the
// service needs for activities.
type ActivityRepository interface {
	GetAll(ctx context.Context) ([]*models.Activity, error)
	GetByName(ctx context.Context, name string) (*models.Activity, error)
}

// StudentRepository is the slice of the persistence gateway the
// service needs for students.
type StudentRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (int64, error)
}

// MembershipRepository is the slice of the persistence gateway the
// service needs for memberships.
type MembershipRepository interface {
	ListAcceptedEmails(ctx context.Context, activityID int64) ([]string, error)
	GetByStudentAndActivity(ctx context.Context, studentID, activityID int64) ([]*models.Membership, error)
	CreateAccepted(ctx context.Context, studentID, activityID int64, maxParticipants int) (int64, error)
	DeleteAccepted(ctx context.Context, studentID, activityID int64) error
}

// ActivityService defines the interface for enrollment operations
type ActivityService interface {
	GetAllActivities(ctx context.Context) ([]*models.Activity, error)
	SignUp(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	activityRepo   ActivityRepository
	studentRepo    StudentRepository
	membershipRepo MembershipRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(activityRepo ActivityRepository, studentRepo StudentRepository, membershipRepo MembershipRepository) ActivityService {
	return &activityServiceImpl{
		activityRepo:   activityRepo,
		studentRepo:    studentRepo,
		membershipRepo: membershipRepo,
	}
}

// GetAllActivities retrieves all activities with their participant
// rosters populated. Activities come back in creation order and each
// roster in membership-creation order, so the result is deterministic
// for a given database state.
func (s *activityServiceImpl) GetAllActivities(ctx context.Context) ([]*models.Activity, error) {
	activities, err := s.activityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}

	for _, activity := range activities {
		participants, err := s.membershipRepo.ListAcceptedEmails(ctx, activity.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving participants for activity %q: %w", activity.Name, err)
		}
		activity.Participants = participants
	}

	return activities, nil
}

// SignUp enrolls the student with the given email in the named
// activity, creating the student record on first contact.
//
// The student row is created before the duplicate and capacity checks,
// so a signup that ultimately fails can still leave a new student
// behind. That matches the find-or-create contract: the record belongs
// to the student, not to this signup attempt.
func (s *activityServiceImpl) SignUp(ctx context.Context, activityName, email string) error {
	activity, err := s.activityRepo.GetByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("error retrieving activity: %w", err)
	}

	student, err := s.findOrCreateStudent(ctx, email)
	if err != nil {
		return err
	}

	memberships, err := s.membershipRepo.GetByStudentAndActivity(ctx, student.ID, activity.ID)
	if err != nil {
		return fmt.Errorf("error retrieving memberships: %w", err)
	}
	for _, membership := range memberships {
		enrolled, err := membership.Status.CountsTowardRoster()
		if err != nil {
			return fmt.Errorf("membership %d: %w", membership.ID, err)
		}
		if enrolled {
			return apperrors.ErrAlreadySignedUp
		}
	}

	if _, err := s.membershipRepo.CreateAccepted(ctx, student.ID, activity.ID, activity.MaxParticipants); err != nil {
		if errors.Is(err, apperrors.ErrActivityFull) {
			return apperrors.ErrActivityFull
		}
		return fmt.Errorf("error creating membership: %w", err)
	}

	return nil
}

// Unregister removes the student's accepted membership from the named
// activity. The student row itself is never deleted. An unknown email
// and a missing membership both surface as ErrNotSignedUp; clients
// cannot tell the two apart and should not need to.
func (s *activityServiceImpl) Unregister(ctx context.Context, activityName, email string) error {
	activity, err := s.activityRepo.GetByName(ctx, activityName)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("error retrieving activity: %w", err)
	}

	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrNotSignedUp
		}
		return fmt.Errorf("error retrieving student: %w", err)
	}

	if err := s.membershipRepo.DeleteAccepted(ctx, student.ID, activity.ID); err != nil {
		if errors.Is(err, apperrors.ErrNotSignedUp) {
			return apperrors.ErrNotSignedUp
		}
		return fmt.Errorf("error deleting membership: %w", err)
	}

	return nil
}

// findOrCreateStudent looks the student up by email, creating a
// placeholder record when none exists. Full profile fields arrive once
// authentication is implemented.
func (s *activityServiceImpl) findOrCreateStudent(ctx context.Context, email string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	placeholder := "Unknown"
	newStudent := &models.Student{
		FirstName: &placeholder,
		LastName:  &placeholder,
		Email:     email,
	}

	id, err := s.studentRepo.Create(ctx, newStudent)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			// Lost a race with a concurrent first signup; the row exists now.
			return s.studentRepo.GetByEmail(ctx, email)
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	newStudent.ID = id
	return newStudent, nil
}
