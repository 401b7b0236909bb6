package filter_test

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inventoryBase = "SELECT inventory.code FROM inventory"

func questionOpts(alias string, autoParse bool) filter.Options {
	return filter.Options{TableAlias: alias, AutoParseStatements: autoParse, Placeholder: sq.Question}
}

func TestApply_NoPredicatesOmitsWhere(t *testing.T) {
	f := filter.New(filter.Params{}, questionOpts("inventory", false)).
		Equals("code").
		FullText("text", "text", "inventory").
		SetOrder("ORDER BY inventory.code ASC")

	query, args, err := f.Apply(inventoryBase)
	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" ORDER BY inventory.code ASC", query)
	assert.Empty(t, args)
}

func TestEquals_AbsentValueIsNoOp(t *testing.T) {
	absent := []any{nil, "", []string{}, []binkey.Key{}}
	for _, v := range absent {
		params := filter.Params{"code": v, "label": "Gauze"}
		base := filter.New(params, questionOpts("inventory", false)).Equals("label")
		withCode := base.Equals("code")

		q1, a1, err := base.Apply(inventoryBase)
		require.NoError(t, err)
		q2, a2, err := withCode.Apply(inventoryBase)
		require.NoError(t, err)

		assert.Equal(t, q1, q2, "value %#v", v)
		assert.Equal(t, a1, a2, "value %#v", v)
	}
}

func TestEquals_FalseAndZeroArePresent(t *testing.T) {
	params := filter.Params{"locked": false, "price": 0}
	query, args, err := filter.New(params, questionOpts("inventory", false)).
		Equals("locked").
		Equals("price").
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" WHERE (inventory.locked = ? AND inventory.price = ?)", query)
	assert.Equal(t, []any{false, 0}, args)
}

func TestApply_PlaceholderOrderMatchesCallOrder(t *testing.T) {
	ids := []binkey.Key{binkey.New(), binkey.New()}
	params := filter.Params{
		"code":            "IT-01",
		"text":            "gloves",
		"inventory_uuids": ids,
		"type_id":         4,
	}

	f := filter.New(params, questionOpts("inventory", false)).
		Equals("code").
		SetOrder("ORDER BY inventory.code ASC").
		FullText("text", "text", "inventory").
		Custom("inventory_uuids", "inventory.uuid = ANY(?)", nil).
		Equals("type_id")

	query, args, err := f.Apply(inventoryBase)
	require.NoError(t, err)

	assert.Equal(t,
		inventoryBase+" WHERE (inventory.code = ? AND inventory.text ILIKE ? AND inventory.uuid = ANY(?) AND inventory.type_id = ?) ORDER BY inventory.code ASC",
		query)
	assert.Equal(t, []any{"IT-01", "%gloves%", ids, 4}, args)
	assert.Equal(t, strings.Count(query, "?"), len(args))
	assert.Equal(t, args, f.Parameters())
}

func TestApply_DollarPlaceholdersByDefault(t *testing.T) {
	params := filter.Params{"code": "A", "label": "B", "limit": "10"}
	query, args, err := filter.New(params, filter.Options{TableAlias: "inventory"}).
		Equals("code").
		Equals("label").
		SetOrder("ORDER BY inventory.code ASC").
		Limit("limit").
		Apply("SELECT * FROM inventory")

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM inventory WHERE (inventory.code = $1 AND inventory.label = $2) ORDER BY inventory.code ASC LIMIT $3", query)
	assert.Equal(t, []any{"A", "B", uint64(10)}, args)
}

func TestApply_BaseArgsComeFirst(t *testing.T) {
	enterprise := 7
	query, args, err := filter.New(filter.Params{"code": "A"}, filter.Options{TableAlias: "inventory"}).
		Equals("code").
		Apply("SELECT * FROM (SELECT * FROM inventory WHERE enterprise_id = ?) AS inventory", enterprise)

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM (SELECT * FROM inventory WHERE enterprise_id = $1) AS inventory WHERE (inventory.code = $2)", query)
	assert.Equal(t, []any{7, "A"}, args)
}

func TestEquals_ListRendersIn(t *testing.T) {
	query, args, err := filter.New(filter.Params{"unit_id": []string{"1", "2", "3"}}, questionOpts("inventory", false)).
		Equals("unit_id").
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" WHERE (inventory.unit_id IN (?,?,?))", query)
	assert.Equal(t, []any{"1", "2", "3"}, args)
}

func TestEquals_KeyBindsAsSingleValue(t *testing.T) {
	k := binkey.New()
	query, args, err := filter.New(filter.Params{"uuid": k}, questionOpts("inventory", false)).
		Equals("uuid").
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" WHERE (inventory.uuid = ?)", query)
	assert.Equal(t, []any{k}, args)
}

func TestFullText_EscapesWildcards(t *testing.T) {
	_, args, err := filter.New(filter.Params{"text": `50%_off\`}, questionOpts("", false)).
		FullText("text", "text", "inventory").
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func TestCustom_BindsValueNeverInterpolates(t *testing.T) {
	hostile := "1); DROP TABLE voucher; --"
	query, args, err := filter.New(filter.Params{}, questionOpts("", false)).
		Custom("account_id", "voucher.uuid IN (SELECT voucher_uuid FROM voucher_item WHERE account_id = ?)", hostile).
		Apply("SELECT * FROM voucher")

	require.NoError(t, err)
	assert.NotContains(t, query, "DROP")
	assert.Equal(t, []any{hostile}, args)
}

func TestCustom_AbsentValueIsNoOp(t *testing.T) {
	query, args, err := filter.New(filter.Params{}, questionOpts("", false)).
		Custom("inventory_uuids", "inventory.uuid = ANY(?)", nil).
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, inventoryBase, query)
	assert.Empty(t, args)
}

func TestCustomArgs_BindsEveryPlaceholderWhenParamPresent(t *testing.T) {
	tmpl := "(voucher.date, voucher.created_at) < (?, ?)"

	query, args, err := filter.New(filter.Params{"after": "tok"}, questionOpts("", false)).
		CustomArgs("after", tmpl, "2024-03-01", "2024-03-01T10:00:00Z").
		Apply("SELECT * FROM voucher")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM voucher WHERE ("+tmpl+")", query)
	assert.Equal(t, []any{"2024-03-01", "2024-03-01T10:00:00Z"}, args)

	query, args, err = filter.New(filter.Params{}, questionOpts("", false)).
		CustomArgs("after", tmpl, "2024-03-01", "2024-03-01T10:00:00Z").
		Apply("SELECT * FROM voucher")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM voucher", query)
	assert.Empty(t, args)
}

func TestAutoParse(t *testing.T) {
	cases := []struct {
		value string
		want  string
		arg   any
	}{
		{">=10", "inventory.price >= ?", "10"},
		{"<= 5", "inventory.price <= ?", "5"},
		{">3", "inventory.price > ?", "3"},
		{"<3", "inventory.price < ?", "3"},
		{"<>7", "inventory.price <> ?", "7"},
		{"!=7", "inventory.price <> ?", "7"},
		{"=7", "inventory.price = ?", "7"},
		{"7", "inventory.price = ?", "7"},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			query, args, err := filter.New(filter.Params{"price": tc.value}, questionOpts("inventory", true)).
				Equals("price").
				Apply(inventoryBase)
			require.NoError(t, err)
			assert.Equal(t, inventoryBase+" WHERE ("+tc.want+")", query)
			assert.Equal(t, []any{tc.arg}, args)
		})
	}
}

func TestAutoParse_UnsupportedOperator(t *testing.T) {
	for _, v := range []string{">>5", "=<5", "!5", "=>", ">="} {
		_, _, err := filter.New(filter.Params{"price": v}, questionOpts("inventory", true)).
			Equals("price").
			Apply(inventoryBase)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFilterOperator, v)
		assert.ErrorIs(t, err, apperrors.ErrValidation, v)
	}
}

func TestAutoParseDisabled_TreatsOperatorsAsPlainValues(t *testing.T) {
	query, args, err := filter.New(filter.Params{"note": ">>5"}, questionOpts("inventory", false)).
		Equals("note").
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" WHERE (inventory.note = ?)", query)
	assert.Equal(t, []any{">>5"}, args)
}

func TestDateRange(t *testing.T) {
	f := filter.New(filter.Params{"dateFrom": "2024-01-01", "dateTo": "2024-01-31"}, questionOpts("voucher", false)).
		DateRange("dateFrom", "dateTo", "date")

	query, args, err := f.Apply("SELECT * FROM voucher")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM voucher WHERE ((voucher.date >= ? AND voucher.date <= ?))", query)
	assert.Equal(t, []any{"2024-01-01", "2024-01-31"}, args)
}

func TestDateRange_SingleBoundFails(t *testing.T) {
	_, _, err := filter.New(filter.Params{"dateFrom": "2024-01-01"}, questionOpts("voucher", false)).
		DateRange("dateFrom", "dateTo", "date").
		Apply("SELECT * FROM voucher")

	assert.ErrorIs(t, err, apperrors.ErrMissingParameters)
}

func TestLimit(t *testing.T) {
	f := filter.New(filter.Params{"limit": 500}, filter.Options{Placeholder: sq.Question, MaxLimit: 100}).Limit("limit")
	query, args, err := f.Apply("SELECT * FROM voucher")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM voucher LIMIT ?", query)
	assert.Equal(t, []any{uint64(100)}, args)

	_, _, err = filter.New(filter.Params{"limit": "ten"}, filter.Options{}).Limit("limit").Apply("SELECT 1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSetOrder_LastCallWins(t *testing.T) {
	query, _, err := filter.New(nil, questionOpts("", false)).
		SetOrder("ORDER BY code ASC").
		SetOrder("ORDER BY code DESC").
		Apply(inventoryBase)

	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" ORDER BY code DESC", query)
}

func TestFilter_IsImmutable(t *testing.T) {
	params := filter.Params{"code": "A", "label": "B"}
	base := filter.New(params, questionOpts("inventory", false)).Equals("code")
	withLabel := base.Equals("label")
	withOrder := base.SetOrder("ORDER BY inventory.code ASC")

	assert.Len(t, base.Clauses(), 1)
	assert.Len(t, withLabel.Clauses(), 2)
	assert.Len(t, withOrder.Clauses(), 2)
	assert.Equal(t, filter.KindLimit.String(), "limit")
	assert.Equal(t, filter.KindEquals, withLabel.Clauses()[1].Kind)
	assert.Equal(t, filter.KindOrder, withOrder.Clauses()[1].Kind)

	q, _, err := base.Apply(inventoryBase)
	require.NoError(t, err)
	assert.Equal(t, inventoryBase+" WHERE (inventory.code = ?)", q)
}
