package service

import (
	"context"

	"pod-dashboard/internal/store"
	"pod-dashboard/pkg/api"
)

// TrendService is the read/write contract views have on the trend store.
type TrendService interface {
	FetchTrends(ctx context.Context)
	Snapshot() store.State
	Subscribe(fn store.Observer) (unsubscribe func())
}

// CatalogService exposes the design and product collections for their listing pages.
type CatalogService interface {
	Designs() api.DesignsAPI
	Products() api.ProductsAPI
}

var (
	_ TrendService   = (*store.TrendStore)(nil)
	_ CatalogService = (*api.Client)(nil)
)
