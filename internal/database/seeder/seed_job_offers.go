package seeder

import (
	"context"
	"encoding/json"
	"time"

	"match-ton-alternance/internal/database"

	"github.com/google/uuid"
)

// JobOfferSeeder inserts a small set of alternance postings for local
// development. External IDs keep reruns idempotent.
type JobOfferSeeder struct{}

func (JobOfferSeeder) Name() string { return "job_offers" }

type seedOffer struct {
	externalID      string
	title           string
	company         string
	description     string
	location        string
	contractType    string
	sector          string
	requiredSkills  []string
	preferredSkills []string
	experienceYears int
	education       string
	salaryMin       int
	salaryMax       int
	remote          bool
}

var seedOffers = []seedOffer{
	{
		externalID:     "seed-dev-web-paris",
		title:          "Développeur web en alternance",
		company:        "Nexa Studio",
		description:    "Développement d'applications React au sein d'une équipe produit. Formation continue assurée.",
		location:       "Paris",
		contractType:   "alternance",
		sector:         "informatique",
		requiredSkills: []string{"javascript", "react"},
		preferredSkills: []string{
			"typescript", "node",
		},
		education: "bac+2",
		salaryMin: 1200,
		salaryMax: 1600,
	},
	{
		externalID:      "seed-data-lyon",
		title:           "Alternant data analyst",
		company:         "Rhône Analytics",
		description:     "Analyse de données commerciales en autonomie, restitution auprès des équipes métier.",
		location:        "Lyon",
		contractType:    "alternance",
		sector:          "data",
		requiredSkills:  []string{"python", "sql"},
		preferredSkills: []string{"tableau"},
		education:       "bac+3",
		salaryMin:       1100,
		salaryMax:       1500,
	},
	{
		externalID:     "seed-marketing-remote",
		title:          "Assistant marketing digital en alternance",
		company:        "Horizon Média",
		description:    "Gestion des campagnes et animation des réseaux sociaux. Télétravail partiel possible.",
		location:       "Bordeaux",
		contractType:   "alternance",
		sector:         "marketing",
		requiredSkills: []string{"marketing", "seo"},
		education:      "bac+2",
		remote:         true,
	},
}

func (JobOfferSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_offers",
		"id", "external_id", "title", "company_name", "description", "location",
		"contract_type", "sector", "required_skills", "preferred_skills",
		"experience_required_years", "education_required", "salary_min", "salary_max",
		"remote_work", "is_active", "publication_date",
	); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, o := range seedOffers {
		required, err := json.Marshal(o.requiredSkills)
		if err != nil {
			return err
		}
		preferred, err := json.Marshal(o.preferredSkills)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			`INSERT INTO job_offers
			    (id, external_id, title, company_name, description, location, contract_type, sector,
			     required_skills, preferred_skills, experience_required_years, education_required,
			     salary_min, salary_max, remote_work, is_active, publication_date)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,TRUE,$16)
			 ON CONFLICT (external_id) WHERE external_id IS NOT NULL AND external_id <> '' DO NOTHING`,
			uuid.New(), o.externalID, o.title, o.company, o.description, o.location,
			o.contractType, o.sector, required, preferred, o.experienceYears, o.education,
			o.salaryMin, o.salaryMax, o.remote, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
