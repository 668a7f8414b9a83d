package api

import "context"

// Attributes is an opaque JSON object supplied by the server (target audience,
// design metadata, raw scrape data). The dashboard never interprets its keys.
type Attributes map[string]interface{}

// Trend scores a market niche. Values arrive from the API and are never mutated locally.
type Trend struct {
	ID                 int64              `json:"id"`
	Niche              string             `json:"niche"`
	Category           string             `json:"category"`
	DemandScore        float64            `json:"demand_score"`
	CompetitionScore   float64            `json:"competition_score"`
	GrowthScore        float64            `json:"growth_score"`
	ProfitabilityScore float64            `json:"profitability_score"`
	OverallScore       float64            `json:"overall_score"`
	MarketplaceCounts  map[string]int     `json:"marketplace_counts,omitempty"`
	AvgPrice           float64            `json:"avg_price"`
	PriceRange         map[string]float64 `json:"price_range,omitempty"`
	TotalReviews       int64              `json:"total_reviews"`
	AvgRating          float64            `json:"avg_rating,omitempty"`
	TargetAudience     Attributes         `json:"target_audience,omitempty"`
	SeasonTrend        string             `json:"season_trend,omitempty"`
	Summary            string             `json:"summary,omitempty"`
	Insights           []string           `json:"insights,omitempty"`
	CreatedAt          Timestamp          `json:"created_at"`
	UpdatedAt          *Timestamp         `json:"updated_at,omitempty"`
}

// TrendCreate is the payload accepted by POST /trends.
type TrendCreate struct {
	Niche              string             `json:"niche"`
	Category           string             `json:"category"`
	DemandScore        float64            `json:"demand_score"`
	CompetitionScore   float64            `json:"competition_score"`
	GrowthScore        float64            `json:"growth_score"`
	ProfitabilityScore float64            `json:"profitability_score"`
	OverallScore       float64            `json:"overall_score"`
	MarketplaceCounts  map[string]int     `json:"marketplace_counts"`
	AvgPrice           float64            `json:"avg_price"`
	PriceRange         map[string]float64 `json:"price_range"`
	TotalReviews       int64              `json:"total_reviews"`
	AvgRating          float64            `json:"avg_rating"`
	TargetAudience     Attributes         `json:"target_audience,omitempty"`
	SeasonTrend        string             `json:"season_trend,omitempty"`
	Summary            string             `json:"summary,omitempty"`
	Insights           []string           `json:"insights,omitempty"`
}

type Product struct {
	ID           int64      `json:"id"`
	Marketplace  string     `json:"marketplace"`
	ExternalID   string     `json:"external_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Rating       *float64   `json:"rating,omitempty"`
	ReviewsCount int64      `json:"reviews_count"`
	SalesCount   *int64     `json:"sales_count,omitempty"`
	ImageURL     string     `json:"image_url"`
	ProductURL   string     `json:"product_url"`
	Tags         []string   `json:"tags,omitempty"`
	Keywords     []string   `json:"keywords,omitempty"`
	TrendID      *int64     `json:"trend_id,omitempty"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    *Timestamp `json:"updated_at,omitempty"`
}

type ProductCreate struct {
	Marketplace  string     `json:"marketplace"`
	ExternalID   string     `json:"external_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	Rating       *float64   `json:"rating,omitempty"`
	ReviewsCount int64      `json:"reviews_count"`
	SalesCount   *int64     `json:"sales_count,omitempty"`
	ImageURL     string     `json:"image_url"`
	ProductURL   string     `json:"product_url"`
	Tags         []string   `json:"tags,omitempty"`
	Keywords     []string   `json:"keywords,omitempty"`
	RawData      Attributes `json:"raw_data,omitempty"`
}

type Design struct {
	ID           int64      `json:"id"`
	TrendID      int64      `json:"trend_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	DesignPrompt string     `json:"design_prompt,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	MockupURLs   []string   `json:"mockup_urls,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    Timestamp  `json:"created_at"`
	UpdatedAt    *Timestamp `json:"updated_at,omitempty"`
}

type DesignCreate struct {
	TrendID             int64      `json:"trend_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	DesignPrompt        string     `json:"design_prompt"`
	DesignMetadata      Attributes `json:"design_metadata,omitempty"`
	ImageURL            string     `json:"image_url,omitempty"`
	MockupURLs          []string   `json:"mockup_urls,omitempty"`
	PrintSpecifications Attributes `json:"print_specifications,omitempty"`
}

// ListOptions carries the offset/limit pair every collection endpoint accepts.
// A zero Limit leaves the server default in place.
type ListOptions struct {
	Skip  int
	Limit int
}

// Param is one query-string key/value pair, kept in insertion order.
type Param struct {
	Key   string
	Value string
}

// TrendsAPI, ProductsAPI and DesignsAPI are the list/get/create passthroughs per resource.
type TrendsAPI interface {
	List(ctx context.Context, opts ListOptions, filter *TrendFilter) ([]Trend, error)
	Get(ctx context.Context, id int64) (*Trend, error)
	Create(ctx context.Context, data TrendCreate) (*Trend, error)
}

type ProductsAPI interface {
	List(ctx context.Context, opts ListOptions, filter *ProductFilter) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, data ProductCreate) (*Product, error)
}

type DesignsAPI interface {
	List(ctx context.Context, opts ListOptions, filter *DesignFilter) ([]Design, error)
	Get(ctx context.Context, id int64) (*Design, error)
	Create(ctx context.Context, data DesignCreate) (*Design, error)
}
