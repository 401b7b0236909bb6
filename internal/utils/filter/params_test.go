package filter_test

import (
	"net/url"
	"testing"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
	"github.com/SscSPs/erp_records_backend/internal/utils/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	q := url.Values{
		"code":            {"IT-01"},
		"inventory_uuids": {"a", "b"},
		"empty":           {},
	}
	p := filter.FromQuery(q)

	assert.Equal(t, "IT-01", p["code"])
	assert.Equal(t, []string{"a", "b"}, p["inventory_uuids"])
	assert.NotContains(t, p, "empty")
}

func TestParams_Has(t *testing.T) {
	p := filter.Params{"a": "", "b": nil, "c": []string{}, "d": false, "e": 0, "f": "x"}
	assert.False(t, p.Has("a"))
	assert.False(t, p.Has("b"))
	assert.False(t, p.Has("c"))
	assert.True(t, p.Has("d"))
	assert.True(t, p.Has("e"))
	assert.True(t, p.Has("f"))
	assert.False(t, p.Has("missing"))
}

func TestConvertKeys(t *testing.T) {
	a, b := binkey.New(), binkey.New()
	p := filter.Params{
		"uuid":            a.String(),
		"inventory_uuids": []string{a.String(), b.String()},
		"group_uuid":      "",
		"code":            "IT-01",
	}

	require.NoError(t, p.ConvertKeys("uuid", "inventory_uuids", "group_uuid", "missing"))

	assert.Equal(t, a, p["uuid"])
	assert.Equal(t, []binkey.Key{a, b}, p["inventory_uuids"])
	assert.Equal(t, "", p["group_uuid"])
	assert.Equal(t, "IT-01", p["code"])
}

func TestConvertKeyLists_WrapsSingleValue(t *testing.T) {
	a := binkey.New()
	p := filter.Params{"inventory_uuids": a.String()}

	require.NoError(t, p.ConvertKeyLists("inventory_uuids"))
	assert.Equal(t, []binkey.Key{a}, p["inventory_uuids"])
}

func TestConvertKeys_Malformed(t *testing.T) {
	p := filter.Params{"uuid": "not-a-uuid"}
	err := p.ConvertKeys("uuid")

	assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifierFormat)
	assert.ErrorIs(t, err, binkey.ErrInvalidFormat)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	p = filter.Params{"uuid": []any{"3f2504e0-4f89-11d3-9a0c-0305e82c3301", 5}}
	assert.ErrorIs(t, p.ConvertKeys("uuid"), apperrors.ErrInvalidIdentifierFormat)
}
