// Package filter composes optional, parameterized SQL predicates from loosely
// typed request parameters.
//
// A Filter is an immutable value: every composition method returns a new
// Filter and leaves the receiver untouched, so a shared base filter can be
// extended per request. Values are always bound as parameters; Apply renders
// clauses in call order so the Nth placeholder lines up with the Nth argument.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
)

// Kind tags a clause in the filter descriptor.
type Kind int

const (
	KindEquals Kind = iota + 1
	KindFullText
	KindCustom
	KindDateRange
	KindOrder
	KindLimit
)

func (k Kind) String() string {
	switch k {
	case KindEquals:
		return "equals"
	case KindFullText:
		return "full_text"
	case KindCustom:
		return "custom"
	case KindDateRange:
		return "date_range"
	case KindOrder:
		return "order"
	case KindLimit:
		return "limit"
	default:
		return "unknown"
	}
}

// Clause is one entry of the filter descriptor.
type Clause struct {
	Kind     Kind
	Name     string // param key; lower bound for date ranges
	UpperKey string // upper bound param key for date ranges
	Column   string
	Template string // custom clauses only
	Value    any    // custom clauses only; nil means read Name from params
	Args     []any  // custom clauses with several placeholders
	Order    string
}

// Options configures how clauses are rendered.
type Options struct {
	// TableAlias qualifies unqualified columns, e.g. "inventory" turns code into inventory.code.
	TableAlias string
	// AutoParseStatements lets equality values carry a comparison prefix such as ">=10".
	AutoParseStatements bool
	// Placeholder is the output placeholder format. Defaults to sq.Dollar.
	Placeholder sq.PlaceholderFormat
	// MaxLimit caps the value accepted by Limit when non-zero.
	MaxLimit uint64
}

// Filter accumulates clauses against a set of params.
type Filter struct {
	params  Params
	opts    Options
	clauses []Clause
}

// New creates an empty Filter over params.
func New(params Params, opts Options) Filter {
	if params == nil {
		params = Params{}
	}
	return Filter{params: params, opts: opts}
}

// Params returns the params the filter reads from.
func (f Filter) Params() Params {
	return f.params
}

// Clauses returns a copy of the accumulated descriptor.
func (f Filter) Clauses() []Clause {
	return append([]Clause(nil), f.clauses...)
}

func (f Filter) with(c Clause) Filter {
	clauses := make([]Clause, len(f.clauses), len(f.clauses)+1)
	copy(clauses, f.clauses)
	f.clauses = append(clauses, c)
	return f
}

func (f Filter) qualify(column, alias string) string {
	if alias == "" {
		alias = f.opts.TableAlias
	}
	if alias == "" || strings.Contains(column, ".") {
		return column
	}
	return alias + "." + column
}

// Equals adds an optional equality on field, read from the param of the same name.
func (f Filter) Equals(field string) Filter {
	return f.EqualsColumn(field, f.qualify(field, ""))
}

// EqualsColumn adds an optional equality on column, read from param name.
// A list value renders as IN (...).
func (f Filter) EqualsColumn(name, column string) Filter {
	return f.with(Clause{Kind: KindEquals, Name: name, Column: column})
}

// FullText adds an optional case-insensitive substring match. LIKE
// metacharacters in the value are escaped; only the builder adds wildcards.
func (f Filter) FullText(name, column, alias string) Filter {
	return f.with(Clause{Kind: KindFullText, Name: name, Column: f.qualify(column, alias)})
}

// Custom adds template with value bound to its single placeholder. A nil
// value reads param name instead. Nothing is emitted when the value is absent.
func (f Filter) Custom(name, template string, value any) Filter {
	return f.with(Clause{Kind: KindCustom, Name: name, Template: template, Value: value})
}

// CustomArgs adds template with args bound to its placeholders in order. It
// is emitted only when param name is present.
func (f Filter) CustomArgs(name, template string, args ...any) Filter {
	return f.with(Clause{Kind: KindCustom, Name: name, Template: template, Args: args})
}

// DateRange adds column >= from AND column <= to. Supplying only one bound is
// an error reported by Apply.
func (f Filter) DateRange(fromName, toName, column string) Filter {
	return f.with(Clause{Kind: KindDateRange, Name: fromName, UpperKey: toName, Column: f.qualify(column, "")})
}

// SetOrder records the trailing ORDER BY clause. The last call wins.
func (f Filter) SetOrder(clause string) Filter {
	return f.with(Clause{Kind: KindOrder, Order: strings.TrimSpace(clause)})
}

// Limit binds LIMIT to the numeric param name when present.
func (f Filter) Limit(name string) Filter {
	return f.with(Clause{Kind: KindLimit, Name: name})
}

type rendered struct {
	preds    []sq.Sqlizer
	order    string
	limit    uint64
	hasLimit bool
}

func (f Filter) render() (rendered, error) {
	var out rendered
	for _, c := range f.clauses {
		switch c.Kind {
		case KindEquals:
			v, ok := f.params.Get(c.Name)
			if !ok {
				continue
			}
			pred, err := f.equality(c.Column, v)
			if err != nil {
				return out, err
			}
			out.preds = append(out.preds, pred)

		case KindFullText:
			v, ok := f.params.Get(c.Name)
			if !ok {
				continue
			}
			out.preds = append(out.preds, sq.ILike{c.Column: "%" + escapeLike(toText(v)) + "%"})

		case KindCustom:
			if c.Args != nil {
				if f.params.Has(c.Name) {
					out.preds = append(out.preds, sq.Expr(c.Template, c.Args...))
				}
				continue
			}
			v := c.Value
			if v == nil {
				var ok bool
				if v, ok = f.params.Get(c.Name); !ok {
					continue
				}
			} else if !isPresent(v) {
				continue
			}
			out.preds = append(out.preds, sq.Expr(c.Template, v))

		case KindDateRange:
			from, hasFrom := f.params.Get(c.Name)
			to, hasTo := f.params.Get(c.UpperKey)
			if !hasFrom && !hasTo {
				continue
			}
			if hasFrom != hasTo {
				return out, apperrors.ErrMissingParameters.With(c.Name+" and "+c.UpperKey, nil)
			}
			out.preds = append(out.preds, sq.And{sq.GtOrEq{c.Column: from}, sq.LtOrEq{c.Column: to}})

		case KindOrder:
			out.order = c.Order

		case KindLimit:
			v, ok := f.params.Get(c.Name)
			if !ok {
				continue
			}
			n, err := toLimit(v)
			if err != nil {
				return out, apperrors.NewAppError(apperrors.KindValidation, "invalid "+c.Name, err)
			}
			if f.opts.MaxLimit > 0 && n > f.opts.MaxLimit {
				n = f.opts.MaxLimit
			}
			out.limit, out.hasLimit = n, true
		}
	}
	return out, nil
}

func (f Filter) equality(column string, v any) (sq.Sqlizer, error) {
	if s, ok := v.(string); ok && f.opts.AutoParseStatements {
		pred, matched, err := parseComparison(column, s)
		if err != nil || matched {
			return pred, err
		}
	}
	if _, ok := v.(binkey.Key); ok {
		return sq.Expr(column+" = ?", v), nil
	}
	return sq.Eq{column: v}, nil
}

func (f Filter) placeholder() sq.PlaceholderFormat {
	if f.opts.Placeholder == nil {
		return sq.Dollar
	}
	return f.opts.Placeholder
}

// Apply renders base followed by WHERE (only when a predicate was emitted),
// the conjunction of predicates, the order clause and the limit. baseArgs
// bind placeholders already present in base and come first.
func (f Filter) Apply(base string, baseArgs ...any) (string, []any, error) {
	r, err := f.render()
	if err != nil {
		return "", nil, err
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(base))
	args := append([]any(nil), baseArgs...)

	if len(r.preds) > 0 {
		where, whereArgs, err := sq.And(r.preds).ToSql()
		if err != nil {
			return "", nil, fmt.Errorf("render filter predicates: %w", err)
		}
		b.WriteString(" WHERE ")
		b.WriteString(where)
		args = append(args, whereArgs...)
	}
	if r.order != "" {
		b.WriteString(" ")
		b.WriteString(r.order)
	}
	if r.hasLimit {
		b.WriteString(" LIMIT ?")
		args = append(args, r.limit)
	}

	query, err := f.placeholder().ReplacePlaceholders(b.String())
	if err != nil {
		return "", nil, fmt.Errorf("replace placeholders: %w", err)
	}
	return query, args, nil
}

// Parameters returns the bound values in placeholder order, or nil when the
// filter cannot be rendered. Apply reports the error.
func (f Filter) Parameters() []any {
	_, args, err := f.Apply("")
	if err != nil {
		return nil
	}
	return args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case []string:
		return strings.Join(t, " ")
	default:
		return fmt.Sprint(v)
	}
}

func toLimit(v any) (uint64, error) {
	switch t := v.(type) {
	case int:
		if t < 0 {
			return 0, fmt.Errorf("negative limit %d", t)
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return 0, fmt.Errorf("negative limit %d", t)
		}
		return uint64(t), nil
	case uint64:
		return t, nil
	case float64:
		if t < 0 || t != float64(uint64(t)) {
			return 0, fmt.Errorf("limit must be a whole number, got %v", t)
		}
		return uint64(t), nil
	case string:
		return strconv.ParseUint(strings.TrimSpace(t), 10, 64)
	default:
		return 0, fmt.Errorf("unsupported limit type %T", v)
	}
}
