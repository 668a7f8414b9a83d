package api

import (
	"context"
	"strconv"
)

func resourcePath(name string, id int64) string {
	return "/" + name + "/" + strconv.FormatInt(id, 10)
}

func listParams(opts ListOptions, filter []Param) []Param {
	return append(opts.params(), filter...)
}

type trendsResource struct{ c *Client }

func (r *trendsResource) List(ctx context.Context, opts ListOptions, filter *TrendFilter) ([]Trend, error) {
	var out []Trend
	if err := r.c.do(ctx, "GET", "/trends", listParams(opts, filter.params()), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *trendsResource) Get(ctx context.Context, id int64) (*Trend, error) {
	var out Trend
	if err := r.c.do(ctx, "GET", resourcePath("trends", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *trendsResource) Create(ctx context.Context, data TrendCreate) (*Trend, error) {
	var out Trend
	if err := r.c.do(ctx, "POST", "/trends", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type productsResource struct{ c *Client }

func (r *productsResource) List(ctx context.Context, opts ListOptions, filter *ProductFilter) ([]Product, error) {
	var out []Product
	if err := r.c.do(ctx, "GET", "/products", listParams(opts, filter.params()), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productsResource) Get(ctx context.Context, id int64) (*Product, error) {
	var out Product
	if err := r.c.do(ctx, "GET", resourcePath("products", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *productsResource) Create(ctx context.Context, data ProductCreate) (*Product, error) {
	var out Product
	if err := r.c.do(ctx, "POST", "/products", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type designsResource struct{ c *Client }

func (r *designsResource) List(ctx context.Context, opts ListOptions, filter *DesignFilter) ([]Design, error) {
	var out []Design
	if err := r.c.do(ctx, "GET", "/designs", listParams(opts, filter.params()), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *designsResource) Get(ctx context.Context, id int64) (*Design, error) {
	var out Design
	if err := r.c.do(ctx, "GET", resourcePath("designs", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *designsResource) Create(ctx context.Context, data DesignCreate) (*Design, error) {
	var out Design
	if err := r.c.do(ctx, "POST", "/designs", nil, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
