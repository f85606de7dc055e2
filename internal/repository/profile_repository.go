package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	// FindPersonalityByUserID returns (nil, nil) when the candidate has not
	// filled the questionnaire; absence is a valid state, not an error.
	FindPersonalityByUserID(ctx context.Context, userID uuid.UUID) (*candidate.PersonalityProfile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	var (
		p            candidate.Profile
		skillsRaw    []byte
		sectorsRaw   []byte
		locationsRaw []byte
		contractsRaw []byte
	)

	row := r.db.QueryRow(ctx,
		`SELECT user_id,
		        COALESCE(first_name, ''), COALESCE(last_name, ''),
		        COALESCE(desired_position, ''), COALESCE(location, ''),
		        COALESCE(experience_level, ''), COALESCE(experience_years, 0),
		        COALESCE(education_level, ''), COALESCE(field_of_study, ''),
		        COALESCE(skills, '[]'),
		        COALESCE(preferred_sectors, '[]'),
		        COALESCE(preferred_locations, '[]'),
		        COALESCE(accepted_contracts, '[]'),
		        COALESCE(salary_expectation_min, 0),
		        COALESCE(salary_expectation_max, 0)
		 FROM user_profiles
		 WHERE user_id = $1`,
		userID,
	)
	err := row.Scan(
		&p.UserID,
		&p.FirstName, &p.LastName,
		&p.DesiredPosition, &p.Location,
		&p.ExperienceLevel, &p.ExperienceYears,
		&p.EducationLevel, &p.FieldOfStudy,
		&skillsRaw,
		&sectorsRaw,
		&locationsRaw,
		&contractsRaw,
		&p.SalaryExpectationMin,
		&p.SalaryExpectationMax,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrProfileNotFound
		}
		return candidate.Profile{}, err
	}

	p.Skills = decodeStringList(skillsRaw)
	p.PreferredSectors = decodeStringList(sectorsRaw)
	p.PreferredLocations = decodeStringList(locationsRaw)
	p.AcceptedContracts = decodeStringList(contractsRaw)

	return p, nil
}

func (r *PostgresProfileRepository) FindPersonalityByUserID(ctx context.Context, userID uuid.UUID) (*candidate.PersonalityProfile, error) {
	var (
		p              candidate.PersonalityProfile
		motivationsRaw []byte
		goalsRaw       []byte
	)

	row := r.db.QueryRow(ctx,
		`SELECT user_id,
		        COALESCE(openness, 0), COALESCE(conscientiousness, 0),
		        COALESCE(extraversion, 0), COALESCE(agreeableness, 0),
		        COALESCE(neuroticism, 0),
		        COALESCE(work_style, ''), COALESCE(learning_style, ''),
		        COALESCE(stress_management, ''), COALESCE(communication_style, ''),
		        COALESCE(motivation, '[]'),
		        COALESCE(career_goals, '[]'),
		        COALESCE(questionnaire_completed, FALSE)
		 FROM personality_profiles
		 WHERE user_id = $1`,
		userID,
	)
	err := row.Scan(
		&p.UserID,
		&p.Openness, &p.Conscientiousness,
		&p.Extraversion, &p.Agreeableness,
		&p.Neuroticism,
		&p.WorkStyle, &p.LearningStyle,
		&p.StressManagement, &p.CommunicationStyle,
		&motivationsRaw,
		&goalsRaw,
		&p.QuestionnaireCompleted,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.Motivations = decodeStringList(motivationsRaw)
	p.CareerGoals = decodeStringList(goalsRaw)

	return &p, nil
}

func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
