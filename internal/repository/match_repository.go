package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/domain/swipe"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchUpsert struct {
	UserID uuid.UUID
	JobID  uuid.UUID

	MatchScore       int
	SkillsScore      int
	PersonalityScore int
	LocationScore    int
	ExperienceScore  int
}

type MatchRepository interface {
	Upsert(ctx context.Context, m MatchUpsert) error
	// ToggleFavorite flips is_favorite in a single statement and returns the
	// updated row; no cross-record locking is involved.
	ToggleFavorite(ctx context.Context, userID, jobID uuid.UUID) (swipe.Match, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Match, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, m MatchUpsert) error {
	if m.UserID == uuid.Nil || m.JobID == uuid.Nil {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO user_matches
		    (id, user_id, job_offer_id, match_score, skills_score, personality_score, location_score, experience_score, is_favorite, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,FALSE,$9)
		 ON CONFLICT (user_id, job_offer_id) DO UPDATE SET
			match_score = EXCLUDED.match_score,
			skills_score = EXCLUDED.skills_score,
			personality_score = EXCLUDED.personality_score,
			location_score = EXCLUDED.location_score,
			experience_score = EXCLUDED.experience_score`,
		uuid.New(),
		m.UserID,
		m.JobID,
		m.MatchScore,
		m.SkillsScore,
		m.PersonalityScore,
		m.LocationScore,
		m.ExperienceScore,
		time.Now().UTC(),
	)
	return err
}

func (r *PostgresMatchRepository) ToggleFavorite(ctx context.Context, userID, jobID uuid.UUID) (swipe.Match, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE user_matches
		 SET is_favorite = NOT is_favorite
		 WHERE user_id = $1 AND job_offer_id = $2
		 RETURNING id, user_id, job_offer_id, match_score, skills_score, personality_score, location_score, experience_score, is_favorite, created_at`,
		userID, jobID,
	)
	m, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return swipe.Match{}, ErrMatchNotFound
		}
		return swipe.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_offer_id, match_score, skills_score, personality_score, location_score, experience_score, is_favorite, created_at
		 FROM user_matches
		 WHERE user_id = $1
		 ORDER BY is_favorite DESC, match_score DESC, created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swipe.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatch(row database.Row) (swipe.Match, error) {
	var m swipe.Match
	err := row.Scan(
		&m.ID, &m.UserID, &m.JobID,
		&m.MatchScore, &m.SkillsScore, &m.PersonalityScore, &m.LocationScore, &m.ExperienceScore,
		&m.IsFavorite, &m.CreatedAt,
	)
	if err != nil {
		return swipe.Match{}, err
	}
	return m, nil
}
