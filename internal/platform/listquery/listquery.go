// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package listquery translates untrusted list query parameters into a bounded,
typed [Spec].

Every catalog family describes what it accepts with a [Config] value (sortable
columns, id filters, numeric ranges, enums, flags). [Translate] is the single
function that applies it:

	spec, err := listquery.Translate(request.URL.Query(), character.ListConfig)

Rules:

  - page defaults to 1 and must be an integer >= 1.
  - limit defaults to 10 and must be an integer in [1, 100].
  - sortBy defaults to the family's first sortable column and must be on the allow-list.
  - sortOrder defaults to ASC and is matched case-insensitively against ASC and DESC.
  - Range bounds must be non-negative integers, and min must not exceed max.
  - Id filters must be positive integers.
  - search is trimmed and otherwise passed through.

A bad value is always rejected; nothing is silently replaced by a default.
The package has no side effects and never touches storage.
*/
package listquery

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/pkg/pagination"
)

// # Query Parameters

const (
	ParamPage      = "page"
	ParamLimit     = "limit"
	ParamSearch    = "search"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
)

// Sort directions.
const (
	Ascending  = "ASC"
	Descending = "DESC"
)

// Operator is the comparison applied by a [Filter].
type Operator string

const (
	Equal   Operator = "="
	AtLeast Operator = ">="
	AtMost  Operator = "<="
)

// # Configuration

// Range describes a pair of optional numeric bounds on one column.
type Range struct {
	MinParam string
	MaxParam string
	Column   string
	// Code is returned when both bounds are present and min > max.
	Code string
}

// Enum describes a query parameter restricted to a fixed set of values.
// The parameter name is also the column name.
type Enum struct {
	Param   string
	Allowed []string
}

// Config is the per-family description of what a list endpoint accepts.
type Config struct {
	// Sortable is the sort allow-list; the first entry is the default.
	Sortable []string
	// IDFilters are foreign key columns filtered by equality.
	IDFilters []string
	Ranges    []Range
	Enums     []Enum
	// Flags are boolean columns filtered by equality ("true", "false", "1", "0").
	Flags []string
}

// # Output

// Filter is one typed WHERE condition on an allow-listed column.
type Filter struct {
	Column   string
	Operator Operator
	Value    any
}

// Spec is the typed result of a successful translation.
type Spec struct {
	pagination.Params
	SortBy    string
	SortOrder string
	Search    string
	Filters   []Filter
}

// # Translation

// Translate converts raw query values into a [Spec] or a 400 [apperr.AppError].
func Translate(values url.Values, config Config) (Spec, error) {
	spec := Spec{
		Params: pagination.Params{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit},
	}

	// 1. Pagination
	if raw, ok := lookup(values, ParamPage); ok {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Spec{}, apperr.InvalidPagination("Page must be a positive integer")
		}
		spec.Page = page
	}

	if raw, ok := lookup(values, ParamLimit); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > pagination.MaxLimit {
			return Spec{}, apperr.InvalidPagination(
				fmt.Sprintf("Limit must be an integer between 1 and %d", pagination.MaxLimit))
		}
		spec.Limit = limit
	}

	// 2. Sorting
	if err := translateSort(values, config, &spec); err != nil {
		return Spec{}, err
	}

	// 3. Search
	spec.Search = strings.TrimSpace(values.Get(ParamSearch))

	// 4. Filters
	for _, column := range config.IDFilters {
		raw, ok := lookup(values, column)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			return Spec{}, apperr.Field(column, fmt.Sprintf("%s must be a positive integer", column))
		}
		spec.Filters = append(spec.Filters, Filter{Column: column, Operator: Equal, Value: id})
	}

	for _, bounds := range config.Ranges {
		filters, err := translateRange(values, bounds)
		if err != nil {
			return Spec{}, err
		}
		spec.Filters = append(spec.Filters, filters...)
	}

	for _, enum := range config.Enums {
		raw, ok := lookup(values, enum.Param)
		if !ok {
			continue
		}
		if !slices.Contains(enum.Allowed, raw) {
			return Spec{}, apperr.Field(enum.Param,
				fmt.Sprintf("%s must be one of: %s", enum.Param, strings.Join(enum.Allowed, ", ")))
		}
		spec.Filters = append(spec.Filters, Filter{Column: enum.Param, Operator: Equal, Value: raw})
	}

	for _, column := range config.Flags {
		raw, ok := lookup(values, column)
		if !ok {
			continue
		}
		flag, err := strconv.ParseBool(raw)
		if err != nil {
			return Spec{}, apperr.Field(column, fmt.Sprintf("%s must be true or false", column))
		}
		spec.Filters = append(spec.Filters, Filter{Column: column, Operator: Equal, Value: flag})
	}

	return spec, nil
}

func translateSort(values url.Values, config Config, spec *Spec) error {
	spec.SortOrder = Ascending
	if len(config.Sortable) > 0 {
		spec.SortBy = config.Sortable[0]
	}

	if raw, ok := lookup(values, ParamSortBy); ok {
		if !slices.Contains(config.Sortable, raw) {
			return apperr.InvalidSort(fmt.Sprintf("Invalid sort field '%s'. Allowed: %s",
				raw, strings.Join(config.Sortable, ", ")))
		}
		spec.SortBy = raw
	}

	if raw, ok := lookup(values, ParamSortOrder); ok {
		switch strings.ToUpper(raw) {
		case Ascending:
			spec.SortOrder = Ascending
		case Descending:
			spec.SortOrder = Descending
		default:
			return apperr.InvalidSort("Sort order must be ASC or DESC")
		}
	}

	return nil
}

func translateRange(values url.Values, bounds Range) ([]Filter, error) {
	var filters []Filter
	var lower, upper int64
	hasLower, hasUpper := false, false

	if raw, ok := lookup(values, bounds.MinParam); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return nil, apperr.Field(bounds.MinParam, fmt.Sprintf("%s must be a non-negative integer", bounds.MinParam))
		}
		lower, hasLower = n, true
		filters = append(filters, Filter{Column: bounds.Column, Operator: AtLeast, Value: n})
	}

	if raw, ok := lookup(values, bounds.MaxParam); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return nil, apperr.Field(bounds.MaxParam, fmt.Sprintf("%s must be a non-negative integer", bounds.MaxParam))
		}
		upper, hasUpper = n, true
		filters = append(filters, Filter{Column: bounds.Column, Operator: AtMost, Value: n})
	}

	if hasLower && hasUpper && lower > upper {
		return nil, apperr.BadRequest(bounds.Code,
			fmt.Sprintf("%s cannot be greater than %s", bounds.MinParam, bounds.MaxParam))
	}

	return filters, nil
}

// lookup returns the trimmed value of key and whether the key was supplied.
// A supplied but blank value is returned as "" so the caller rejects it.
func lookup(values url.Values, key string) (string, bool) {
	return strings.TrimSpace(values.Get(key)), values.Has(key)
}
