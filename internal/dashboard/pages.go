package dashboard

import (
	"context"
	"errors"

	"pod-dashboard/internal/store"
	"pod-dashboard/pkg/api"
	"pod-dashboard/pkg/logger"
)

// PageSize is how many designs or products a listing page requests.
const PageSize = 50

// LoadingPlaceholders is how many skeleton cards a loading grid shows.
const LoadingPlaceholders = 6

// ScoreCard is one headline statistic above a listing.
type ScoreCard struct {
	Label string
	Value float64
	Icon  string
	Color string
}

// TrendsPage is everything the trend listing template needs for one render.
type TrendsPage struct {
	Trends     []api.Trend
	Loading    bool
	Error      string
	Summary    Summary
	ScoreCards []ScoreCard
}

// NewTrendsPage derives the listing from a store snapshot.
func NewTrendsPage(st store.State) TrendsPage {
	sum := Summarize(st.Trends)
	return TrendsPage{
		Trends:  st.Trends,
		Loading: st.Loading,
		Error:   st.Error,
		Summary: sum,
		ScoreCards: []ScoreCard{
			{Label: "Total Trends", Value: float64(sum.Total), Icon: "trending-up", Color: "text-blue-500"},
			{Label: "Avg Score", Value: sum.AverageScore, Icon: "bar-chart-3", Color: "text-purple-500"},
			{Label: "High Demand", Value: float64(sum.HighDemand), Icon: "zap", Color: "text-yellow-500"},
			{Label: "Profitable", Value: float64(sum.Profitable), Icon: "target", Color: "text-green-500"},
		},
	}
}

// ShowCards reports whether the grid of trend cards is rendered.
func (p TrendsPage) ShowCards() bool {
	return !p.Loading && len(p.Trends) > 0
}

// ShowEmpty reports whether the "No trends available" panel is rendered.
func (p TrendsPage) ShowEmpty() bool {
	return !p.Loading && len(p.Trends) == 0
}

// DesignsPage holds the page-local state of the design listing. It does not
// go through the trend store.
type DesignsPage struct {
	Designs []api.Design
	Loading bool
	Error   string
}

// LoadDesigns performs the design page's single fetch. The returned page is
// always settled (Loading false).
func LoadDesigns(ctx context.Context, designs api.DesignsAPI) DesignsPage {
	list, err := designs.List(ctx, api.ListOptions{Limit: PageSize}, nil)
	if err != nil {
		logger.WithField("component", "designs_page").WithError(err).Debug("Design fetch failed")
		return DesignsPage{Error: pageError(err, "Failed to fetch designs")}
	}
	return DesignsPage{Designs: list}
}

// ProductsPage mirrors DesignsPage for marketplace products.
type ProductsPage struct {
	Products []api.Product
	Loading  bool
	Error    string
}

func LoadProducts(ctx context.Context, products api.ProductsAPI) ProductsPage {
	list, err := products.List(ctx, api.ListOptions{Limit: PageSize}, nil)
	if err != nil {
		logger.WithField("component", "products_page").WithError(err).Debug("Product fetch failed")
		return ProductsPage{Error: pageError(err, "Failed to fetch products")}
	}
	return ProductsPage{Products: list}
}

func pageError(err error, fallback string) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		return fallback
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
