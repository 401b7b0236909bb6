package filter

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
)

const operatorChars = "<>=!"

var comparisons = map[string]func(column string, v any) sq.Sqlizer{
	"=":  func(c string, v any) sq.Sqlizer { return sq.Eq{c: v} },
	"<>": func(c string, v any) sq.Sqlizer { return sq.NotEq{c: v} },
	"!=": func(c string, v any) sq.Sqlizer { return sq.NotEq{c: v} },
	">":  func(c string, v any) sq.Sqlizer { return sq.Gt{c: v} },
	">=": func(c string, v any) sq.Sqlizer { return sq.GtOrEq{c: v} },
	"<":  func(c string, v any) sq.Sqlizer { return sq.Lt{c: v} },
	"<=": func(c string, v any) sq.Sqlizer { return sq.LtOrEq{c: v} },
}

// parseComparison splits a leading operator off raw. matched is false when
// raw has no operator prefix and should be used as a plain value.
func parseComparison(column, raw string) (pred sq.Sqlizer, matched bool, err error) {
	trimmed := strings.TrimLeft(raw, " ")
	end := 0
	for end < len(trimmed) && strings.IndexByte(operatorChars, trimmed[end]) >= 0 {
		end++
	}
	if end == 0 {
		return nil, false, nil
	}

	op := trimmed[:end]
	build, ok := comparisons[op]
	if !ok {
		return nil, true, apperrors.ErrUnsupportedFilterOperator.With(op, nil)
	}
	operand := strings.TrimSpace(trimmed[end:])
	if operand == "" {
		return nil, true, apperrors.ErrUnsupportedFilterOperator.With(op+" without operand", nil)
	}
	return build(column, operand), true, nil
}
