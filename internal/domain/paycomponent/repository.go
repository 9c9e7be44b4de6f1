package paycomponent

import "context"

// CatalogRepository serves the full configured rule set. Eligibility
// filtering is the engine's job, not the catalog's.
type CatalogRepository interface {
	Create(ctx context.Context, def Definition) (Definition, error)
	GetByID(ctx context.Context, id string) (Definition, error)
	ListActive(ctx context.Context, kind Kind) ([]Definition, error)
	Update(ctx context.Context, def Definition) (Definition, error)
	Delete(ctx context.Context, id string) error
}
