package repository

import (
	"context"
	"database/sql"
	"errors"

	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, jobID uuid.UUID) (job.Posting, error)
	ListActive(ctx context.Context, limit, offset int) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, COALESCE(external_id, ''),
	        COALESCE(title, ''), COALESCE(company_name, ''),
	        COALESCE(description, ''), COALESCE(location, ''),
	        COALESCE(contract_type, ''), COALESCE(sector, ''),
	        COALESCE(required_skills, '[]'), COALESCE(preferred_skills, '[]'),
	        COALESCE(experience_required_years, 0), COALESCE(education_required, ''),
	        COALESCE(salary_min, 0), COALESCE(salary_max, 0),
	        COALESCE(remote_work, FALSE), COALESCE(is_active, FALSE),
	        COALESCE(publication_date, NOW()), expires_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM job_offers
		 WHERE id = $1`,
		jobID,
	)
	p, err := scanPosting(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit, offset int) ([]job.Posting, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM job_offers
		 WHERE is_active = TRUE AND (expires_at IS NULL OR expires_at > NOW())
		 ORDER BY publication_date DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var (
		p            job.Posting
		requiredRaw  []byte
		preferredRaw []byte
	)
	err := row.Scan(
		&p.ID, &p.ExternalID,
		&p.Title, &p.Company,
		&p.Description, &p.Location,
		&p.ContractType, &p.Sector,
		&requiredRaw, &preferredRaw,
		&p.ExperienceRequiredYears, &p.EducationRequired,
		&p.SalaryMin, &p.SalaryMax,
		&p.RemoteWork, &p.IsActive,
		&p.PostedAt, &p.ExpiresAt,
	)
	if err != nil {
		return job.Posting{}, err
	}
	p.RequiredSkills = decodeStringList(requiredRaw)
	p.PreferredSkills = decodeStringList(preferredRaw)
	return p, nil
}
