package ports

import (
	"context"

	"github.com/emiliopalmerini/ufcompare/internal/domain"
)

// DatasetLoader loads the fighter dataset. Implementations load at most once
// and return the cached result afterwards.
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}
