package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	appModels "github.com/mergington/activities/internal/app/models"
	appRepos "github.com/mergington/activities/internal/app/repositories"
	"github.com/mergington/activities/internal/db"
	"github.com/mergington/activities/internal/pkg/apperrors"
	"github.com/mergington/activities/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// DefaultAdminEmail is the email of the admin account created on first
// startup. The password must be changed before any admin endpoints
// ship.
const DefaultAdminEmail = "admin@mergington.edu"

const defaultAdminPassword = "Admin123!"

type activitySeed struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
}

type signupSeed struct {
	Email    string
	Activity string
}

var defaultActivities = []activitySeed{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
	},
	{
		Name:            "Soccer Team",
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 22,
	},
	{
		Name:            "Basketball Team",
		Description:     "Practice and play basketball with the school team",
		Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	},
	{
		Name:            "Art Club",
		Description:     "Explore your creativity through painting and drawing",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	},
	{
		Name:            "Drama Club",
		Description:     "Act, direct, and produce plays and performances",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Math Club",
		Description:     "Solve challenging problems and participate in math competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 10,
	},
	{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 12,
	},
	{
		Name:            "GitHub Skills",
		Description:     "Learn practical coding and collaboration skills with GitHub. Part of the GitHub Certifications program to help with college applications",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 25,
	},
}

var defaultSignups = []signupSeed{
	{Email: "michael@mergington.edu", Activity: "Chess Club"},
	{Email: "daniel@mergington.edu", Activity: "Chess Club"},
	{Email: "emma@mergington.edu", Activity: "Programming Class"},
	{Email: "sophia@mergington.edu", Activity: "Programming Class"},
	{Email: "john@mergington.edu", Activity: "Gym Class"},
	{Email: "olivia@mergington.edu", Activity: "Gym Class"},
	{Email: "liam@mergington.edu", Activity: "Soccer Team"},
	{Email: "noah@mergington.edu", Activity: "Soccer Team"},
	{Email: "ava@mergington.edu", Activity: "Basketball Team"},
	{Email: "mia@mergington.edu", Activity: "Basketball Team"},
	{Email: "amelia@mergington.edu", Activity: "Art Club"},
	{Email: "harper@mergington.edu", Activity: "Art Club"},
	{Email: "ella@mergington.edu", Activity: "Drama Club"},
	{Email: "scarlett@mergington.edu", Activity: "Drama Club"},
	{Email: "james@mergington.edu", Activity: "Math Club"},
	{Email: "benjamin@mergington.edu", Activity: "Math Club"},
	{Email: "charlotte@mergington.edu", Activity: "Debate Team"},
	{Email: "henry@mergington.edu", Activity: "Debate Team"},
}

// CreateDefaultData creates the default activities, pre-registered
// students, and admin account if the database is empty. Seeding is
// skipped entirely once any activity exists, so restarts never touch
// rosters that have since changed. The activity and roster inserts run
// in one transaction; a failure rolls the whole batch back rather than
// committing a half-seeded catalog.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	activityRepo := appRepos.NewActivityRepository(database.Pool)
	adminRepo := appRepos.NewAdminRepository(database.Pool)

	lgr.Info().Msg("Checking/Creating default data (activities and rosters)...")
	var finalErr error // To collect potential errors without stopping the process

	count, err := activityRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting activities before seeding")
		return err
	}

	if count == 0 {
		err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			return seedActivities(ctx, tx)
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error seeding default activities, batch rolled back")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int("activities", len(defaultActivities)).Int("signups", len(defaultSignups)).Msg("Default activities and rosters created")
		}
	} else {
		lgr.Info().Int("activities", count).Msg("Activities already present, skipping activity seeding")
	}

	// --- Create Default Admin --- //
	exists, err := adminRepo.EmailExists(ctx, DefaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default admin exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin account...")

		hashedPassword, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			name := "Principal Martinez"
			admin := &appModels.Admin{
				Email:        DefaultAdminEmail,
				PasswordHash: hashedPassword,
				Name:         &name,
			}
			if _, err := adminRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				lgr.Error().Err(err).Msg("Error creating default admin")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr != nil {
		return fmt.Errorf("seeding completed with errors: %w", finalErr)
	}
	return nil
}

// seedActivities inserts the default activities and their rosters
// through q, the seeding transaction. Any failure aborts the batch so
// the caller's transaction rolls back.
func seedActivities(ctx context.Context, q appRepos.Querier) error {
	activityRepo := appRepos.NewActivityRepository(q)
	studentRepo := appRepos.NewStudentRepository(q)
	membershipRepo := appRepos.NewMembershipRepository(q)

	activityIDs := make(map[string]int64, len(defaultActivities))
	capacities := make(map[string]int, len(defaultActivities))

	for _, seedActivity := range defaultActivities {
		activity := &appModels.Activity{
			Name:            seedActivity.Name,
			Description:     seedActivity.Description,
			Schedule:        seedActivity.Schedule,
			MaxParticipants: seedActivity.MaxParticipants,
		}
		id, err := activityRepo.Create(ctx, activity)
		if err != nil {
			return fmt.Errorf("creating activity %q: %w", seedActivity.Name, err)
		}
		activityIDs[seedActivity.Name] = id
		capacities[seedActivity.Name] = seedActivity.MaxParticipants
	}

	for _, signup := range defaultSignups {
		activityID := activityIDs[signup.Activity]

		// Names are unknown until students register themselves
		pending := "Pending"
		student := &appModels.Student{
			FirstName: &pending,
			LastName:  &pending,
			Email:     signup.Email,
		}
		studentID, err := studentRepo.Create(ctx, student)
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			// Student rows can predate the activity catalog
			existing, errGet := studentRepo.GetByEmail(ctx, signup.Email)
			if errGet != nil {
				return fmt.Errorf("finding existing student %q: %w", signup.Email, errGet)
			}
			studentID = existing.ID
		} else if err != nil {
			return fmt.Errorf("creating student %q: %w", signup.Email, err)
		}

		if _, err := membershipRepo.CreateAccepted(ctx, studentID, activityID, capacities[signup.Activity]); err != nil {
			return fmt.Errorf("enrolling %s in %s: %w", signup.Email, signup.Activity, err)
		}
	}

	return nil
}
