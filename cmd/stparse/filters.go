package main

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stparse/stparse/pkg/csv"
	"github.com/stparse/stparse/pkg/format"
	"github.com/stparse/stparse/pkg/models"
)

type filters struct {
	startDate   string
	endDate     string
	minAmount   float64
	maxAmount   float64
	description string
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(t *models.Transaction) bool {
		date, dateOK := format.DateTime(t.Date)
		if f.startDate != "" {
			if start, ok := format.DateTime(f.startDate); ok && dateOK && date.Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			if end, ok := format.DateTime(f.endDate); ok && dateOK && date.After(end) {
				return false
			}
		}
		if f.minAmount != 0 && t.Amount.LessThan(decimal.NewFromFloat(f.minAmount)) {
			return false
		}
		if f.maxAmount != 0 && t.Amount.GreaterThan(decimal.NewFromFloat(f.maxAmount)) {
			return false
		}
		if f.description != "" &&
			!strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.description)) {
			return false
		}
		return true
	}
}
