package api

import "strconv"

// TrendFilter narrows GET /trends. Zero values are not sent.
type TrendFilter struct {
	Niche    string
	Category string
	MinScore float64
}

func (f *TrendFilter) params() []Param {
	if f == nil {
		return nil
	}
	var out []Param
	if f.Niche != "" {
		out = append(out, Param{Key: "niche", Value: f.Niche})
	}
	if f.Category != "" {
		out = append(out, Param{Key: "category", Value: f.Category})
	}
	if f.MinScore > 0 {
		out = append(out, Param{Key: "min_score", Value: formatFloat(f.MinScore)})
	}
	return out
}

// ProductFilter narrows GET /products.
type ProductFilter struct {
	Marketplace string
	Category    string
	MinRating   float64
}

func (f *ProductFilter) params() []Param {
	if f == nil {
		return nil
	}
	var out []Param
	if f.Marketplace != "" {
		out = append(out, Param{Key: "marketplace", Value: f.Marketplace})
	}
	if f.Category != "" {
		out = append(out, Param{Key: "category", Value: f.Category})
	}
	if f.MinRating > 0 {
		out = append(out, Param{Key: "min_rating", Value: formatFloat(f.MinRating)})
	}
	return out
}

// DesignFilter narrows GET /designs.
type DesignFilter struct {
	TrendID int64
	Status  string
}

func (f *DesignFilter) params() []Param {
	if f == nil {
		return nil
	}
	var out []Param
	if f.TrendID > 0 {
		out = append(out, Param{Key: "trend_id", Value: strconv.FormatInt(f.TrendID, 10)})
	}
	if f.Status != "" {
		out = append(out, Param{Key: "status", Value: f.Status})
	}
	return out
}

// params renders skip/limit. Zero skip is the server default and is left out,
// so the first page of fifty reads ?limit=50.
func (o ListOptions) params() []Param {
	var out []Param
	if o.Skip > 0 {
		out = append(out, Param{Key: "skip", Value: strconv.Itoa(o.Skip)})
	}
	if o.Limit > 0 {
		out = append(out, Param{Key: "limit", Value: strconv.Itoa(o.Limit)})
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
