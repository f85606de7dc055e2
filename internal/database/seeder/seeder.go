package seeder

import (
	"context"

	"match-ton-alternance/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
