package migrations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type step struct {
	name string
	run  func(ctx context.Context, database *mongo.Database) error
}

// Emails are normalized before the unique index is built on them.
var steps = []step{
	{"normalize emails", NormalizeEmails},
	{"create indexes", CreateIndexes},
}

func Run(ctx context.Context, database *mongo.Database) error {
	for _, s := range steps {
		if err := s.run(ctx, database); err != nil {
			return fmt.Errorf("migration %q failed: %w", s.name, err)
		}
	}
	return nil
}
