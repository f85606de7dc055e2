package repository

import (
	"context"
	"errors"
	"time"

	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/domain/swipe"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateSwipe surfaces the unique (user_id, job_offer_id) constraint:
// a pair is decided exactly once, concurrent retries included.
var ErrDuplicateSwipe = errors.New("swipe already recorded")

const pgUniqueViolation = "23505"

type SwipeInsert struct {
	UserID     uuid.UUID
	JobID      uuid.UUID
	Action     swipe.Action
	MatchScore int
	Feedback   string
}

type SwipeRepository interface {
	Insert(ctx context.Context, in SwipeInsert) (swipe.Record, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Record, error)
}

type PostgresSwipeRepository struct {
	db database.DB
}

func NewPostgresSwipeRepository(db database.DB) *PostgresSwipeRepository {
	return &PostgresSwipeRepository{db: db}
}

// Insert relies on the storage constraint rather than check-then-insert, so
// two concurrent swipes on the same pair cannot both land.
func (r *PostgresSwipeRepository) Insert(ctx context.Context, in SwipeInsert) (swipe.Record, error) {
	rec := swipe.Record{
		ID:         uuid.New(),
		UserID:     in.UserID,
		JobID:      in.JobID,
		Action:     in.Action,
		MatchScore: in.MatchScore,
		Feedback:   in.Feedback,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO swipe_history (id, user_id, job_offer_id, action, match_score, feedback, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.UserID, rec.JobID, string(rec.Action), rec.MatchScore, rec.Feedback, rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return swipe.Record{}, ErrDuplicateSwipe
		}
		return swipe.Record{}, err
	}
	return rec, nil
}

func (r *PostgresSwipeRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Record, error) {
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
		`SELECT id, user_id, job_offer_id, action, COALESCE(match_score, 0), COALESCE(feedback, ''), created_at
		 FROM swipe_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swipe.Record, 0)
	for rows.Next() {
		var (
			rec    swipe.Record
			action string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.JobID, &action, &rec.MatchScore, &rec.Feedback, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Action = swipe.Action(action)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
