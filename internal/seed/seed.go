package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/melisdmr/brightnest/internal/app/models"
	appRepos "github.com/melisdmr/brightnest/internal/app/repositories"
	"github.com/melisdmr/brightnest/internal/pkg/apperrors"
	"github.com/melisdmr/brightnest/internal/pkg/auth"
)

const defaultDirectorEmail = "director@brightnest.app"

// CreateDefaultData seeds the director account and starter classrooms so a
// fresh install is usable immediately. Existing rows are left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	classroomRepo := appRepos.NewClassroomRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	if err := seedDirector(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedClassrooms(ctx, classroomRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedDirector(ctx context.Context, userRepo *appRepos.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultDirectorEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default director account")
		return err
	}
	if exists {
		return nil
	}

	// The initial password comes from the environment so it never lands in
	// source control. Seeding is skipped when it is unset.
	password := os.Getenv("SEED_DIRECTOR_PASSWORD")
	if password == "" {
		lgr.Warn().Msg("SEED_DIRECTOR_PASSWORD not set, skipping director account seed")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default director password")
		return err
	}

	director := &appModels.User{
		Email:        defaultDirectorEmail,
		PasswordHash: hash,
		FirstName:    "Center",
		LastName:     "Director",
		RoleType:     appModels.RoleDirector,
		IsActive:     true,
	}

	if err := userRepo.Create(ctx, director); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating default director account")
		return err
	}

	lgr.Info().Str("email", defaultDirectorEmail).Msg("Default director account created")
	return nil
}

func seedClassrooms(ctx context.Context, classroomRepo *appRepos.ClassroomRepository, lgr zerolog.Logger) error {
	existing, err := classroomRepo.ListAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing classrooms for seeding")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []*appModels.Classroom{
		{Name: "Duckling Room", Capacity: 8, AgeGroup: "infant", IsActive: true},
		{Name: "Sunflower Room", Capacity: 12, AgeGroup: "toddler", IsActive: true},
		{Name: "Redwood Room", Capacity: 20, AgeGroup: "preschool", IsActive: true},
	}

	var finalErr error
	for _, room := range defaults {
		if err := classroomRepo.Create(ctx, room); err != nil && !errors.Is(err, apperrors.ErrClassroomAlreadyExists) {
			lgr.Error().Err(err).Str("name", room.Name).Msg("Error creating default classroom")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("name", room.Name).Msg("Default classroom created")
	}

	return finalErr
}
