package paycomponent

import "context"

type CatalogService interface {
	CreateComponent(ctx context.Context, req CreatePayComponentRequest) (PayComponentResponse, error)
	GetComponent(ctx context.Context, id string) (PayComponentResponse, error)
	ListComponents(ctx context.Context, kind Kind) ([]PayComponentResponse, error)
	UpdateComponent(ctx context.Context, id string, req CreatePayComponentRequest) (PayComponentResponse, error)
	DeleteComponent(ctx context.Context, id string) error
}
