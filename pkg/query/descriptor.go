package query

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"bootcamp-api/pkg/cerror"
)

const (
	KeySelect = "select"
	KeySort   = "sort"
	KeyPage   = "page"
	KeyLimit  = "limit"

	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
	DefaultSort  = "-createdAt"
)

type Operator string

const (
	OperatorEq  Operator = "eq"
	OperatorGt  Operator = "gt"
	OperatorGte Operator = "gte"
	OperatorLt  Operator = "lt"
	OperatorLte Operator = "lte"
	OperatorIn  Operator = "in"
)

var suffixOperators = map[string]Operator{
	"gt":  OperatorGt,
	"gte": OperatorGte,
	"lt":  OperatorLt,
	"lte": OperatorLte,
	"in":  OperatorIn,
}

type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

type Filter struct {
	Field    string
	Operator Operator
	Value    interface{}
}

type SortKey struct {
	Field     string
	Direction Direction
}

// Descriptor is the typed form of a listing query string.
type Descriptor struct {
	Filters []Filter
	Select  []string
	Sort    []SortKey
	Page    int64
	Limit   int64
}

func (d *Descriptor) Skip() int64 {
	return (d.Page - 1) * d.Limit
}

// References reports the first of fields that a filter or sort key names,
// including paths nested under it.
func (d *Descriptor) References(fields []string) (string, bool) {
	names := make([]string, 0, len(d.Filters)+len(d.Sort))
	for _, filter := range d.Filters {
		names = append(names, filter.Field)
	}
	for _, key := range d.Sort {
		names = append(names, key.Field)
	}

	for _, name := range names {
		for _, field := range fields {
			if name == field || strings.HasPrefix(name, field+".") {
				return field, true
			}
		}
	}

	return "", false
}

// Parse reads the reserved keys into typed fields and treats every other key
// as a filter. Repeated keys are accepted; `in` values accumulate.
func Parse(params map[string][]string) (*Descriptor, error) {
	limit := parsePositive(first(params[KeyLimit]), DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// page*limit must stay representable for the skip and next page math
	page := parsePositive(first(params[KeyPage]), DefaultPage)
	if maxPage := math.MaxInt64 / limit; page > maxPage {
		page = maxPage
	}

	descriptor := &Descriptor{
		Page:  page,
		Limit: limit,
	}

	descriptor.Select = splitList(params[KeySelect])
	for _, field := range descriptor.Select {
		if err := validateField(field); err != nil {
			return nil, err
		}
	}

	sortFields := splitList(params[KeySort])
	if len(sortFields) == 0 {
		sortFields = []string{DefaultSort}
	}
	for _, field := range sortFields {
		direction := Ascending
		if strings.HasPrefix(field, "-") {
			direction = Descending
			field = strings.TrimPrefix(field, "-")
		}
		if err := validateField(field); err != nil {
			return nil, err
		}
		descriptor.Sort = append(descriptor.Sort, SortKey{Field: field, Direction: direction})
	}

	filters, err := parseFilters(params)
	if err != nil {
		return nil, err
	}
	descriptor.Filters = filters

	return descriptor, nil
}

func parseFilters(params map[string][]string) ([]Filter, error) {
	type filterKey struct {
		field    string
		operator Operator
	}

	byKey := map[filterKey]*Filter{}
	for key, values := range params {
		if isReserved(key) {
			continue
		}

		field, operator, err := splitOperator(key)
		if err != nil {
			return nil, err
		}
		if err = validateField(field); err != nil {
			return nil, err
		}

		k := filterKey{field: field, operator: operator}
		if operator == OperatorIn {
			existing, ok := byKey[k]
			if !ok {
				existing = &Filter{Field: field, Operator: operator, Value: []interface{}{}}
				byKey[k] = existing
			}
			list := existing.Value.([]interface{})
			for _, value := range splitList(values) {
				list = append(list, coerce(value))
			}
			existing.Value = list
			continue
		}

		if len(values) == 0 {
			continue
		}
		// last value wins for scalar operators
		byKey[k] = &Filter{Field: field, Operator: operator, Value: coerce(values[len(values)-1])}
	}

	filters := make([]Filter, 0, len(byKey))
	for _, filter := range byKey {
		filters = append(filters, *filter)
	}
	sort.Slice(filters, func(i, j int) bool {
		if filters[i].Field != filters[j].Field {
			return filters[i].Field < filters[j].Field
		}
		return filters[i].Operator < filters[j].Operator
	})

	return filters, nil
}

// splitOperator turns `averageCost[lte]` into (averageCost, lte).
func splitOperator(key string) (string, Operator, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return key, OperatorEq, nil
	}

	if !strings.HasSuffix(key, "]") || open == 0 {
		return "", "", cerror.ValidationError(fmt.Sprintf("malformed query parameter %s", key))
	}

	suffix := key[open+1 : len(key)-1]
	operator, ok := suffixOperators[suffix]
	if !ok {
		return "", "", cerror.ValidationError(fmt.Sprintf("unsupported query operator %s", suffix))
	}

	return key[:open], operator, nil
}

func validateField(field string) error {
	if field == "" || strings.HasPrefix(field, "$") || strings.ContainsAny(field, "[]") {
		return cerror.ValidationError(fmt.Sprintf("invalid field name %q", field))
	}
	for _, part := range strings.Split(field, ".") {
		if part == "" || strings.HasPrefix(part, "$") {
			return cerror.ValidationError(fmt.Sprintf("invalid field name %q", field))
		}
	}

	return nil
}

func isReserved(key string) bool {
	switch key {
	case KeySelect, KeySort, KeyPage, KeyLimit:
		return true
	default:
		return false
	}
}

// coerce converts a raw query value to a number or boolean when it looks like
// one. Values with a leading zero such as zip codes stay strings.
func coerce(raw string) interface{} {
	if raw == "true" || raw == "false" {
		return raw == "true"
	}

	digits := strings.TrimPrefix(raw, "-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] != '.' {
		return raw
	}

	if number, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return number
	}
	if number, err := strconv.ParseFloat(raw, 64); err == nil && !strings.ContainsAny(raw, "eEnNiI") {
		return number
	}

	return raw
}

func splitList(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result = append(result, part)
			}
		}
	}

	return result
}

func parsePositive(raw string, defaultValue int64) int64 {
	number, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || number < 1 {
		return defaultValue
	}

	return number
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
