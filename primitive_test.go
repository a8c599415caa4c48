package jsonrule_test

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/Gobd/jsonrule"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in      any
		want    int64
		wantErr bool
	}{
		{in: 3.0, want: 3},
		{in: -7.0, want: -7},
		{in: json.Number("9007199254740993"), want: 9007199254740993},
		{in: json.Number("4e2"), want: 400},
		{in: 12, want: 12},
		{in: uint8(5), want: 5},
		{in: 3.5, wantErr: true},
		{in: math.Inf(1), wantErr: true},
		{in: math.NaN(), wantErr: true},
		{in: uint64(math.MaxUint64), wantErr: true},
		{in: json.Number("1.5"), wantErr: true},
		{in: "3", wantErr: true},
		{in: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(jsonText(tt.in)), func(t *testing.T) {
			got, err := jsonrule.Int().Validate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, jsonrule.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func jsonText(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "unmarshalable"
	}
	return string(b)
}

func TestFloat(t *testing.T) {
	for _, in := range []any{2.5, json.Number("2.5"), float32(2.5)} {
		got, err := jsonrule.Float().Validate(in)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got, 1e-9)
	}
	got, err := jsonrule.Float().Validate(4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-9)

	_, err = jsonrule.Float().Validate(true)
	require.ErrorIs(t, err, jsonrule.ErrInvalidType)
	_, err = jsonrule.Float().Validate(json.Number("nope"))
	require.ErrorIs(t, err, jsonrule.ErrInvalidType)
}

func TestStringAndBool(t *testing.T) {
	s, err := jsonrule.String(jsonrule.Length(2, 4)).Validate("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	_, err = jsonrule.String(jsonrule.Length(2, 4)).Validate("abcde")
	require.EqualError(t, err, "the length must be between 2 and 4")

	_, err = jsonrule.String().Validate(json.Number("1"))
	require.EqualError(t, err, "value of unexpected type found: number, expected string")

	b, err := jsonrule.Bool().Validate(true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = jsonrule.Bool().Validate("true")
	require.ErrorIs(t, err, jsonrule.ErrInvalidType)

	out, err := jsonrule.Bool().Dump(false)
	require.NoError(t, err)
	assert.Equal(t, false, out)
}

func TestAny(t *testing.T) {
	raw := map[string]any{"a": []any{1.0}}
	got, err := jsonrule.Any().Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	got, err = jsonrule.Any().Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = jsonrule.Any(jsonrule.KeyIn("b")).Validate(raw)
	require.EqualError(t, err, "key 'a' not allowed")
}

func TestScalarSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema *openapi3.Schema
		typ    string
	}{
		{name: "string", schema: jsonrule.String().Schema(), typ: openapi3.TypeString},
		{name: "int", schema: jsonrule.Int().Schema(), typ: openapi3.TypeInteger},
		{name: "float", schema: jsonrule.Float().Schema(), typ: openapi3.TypeNumber},
		{name: "bool", schema: jsonrule.Bool().Schema(), typ: openapi3.TypeBoolean},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.schema.Type.Is(tt.typ))
		})
	}

	s := jsonrule.Int(jsonrule.Min(1), jsonrule.Max(10), jsonrule.Describe("page size"), jsonrule.Default(20)).Schema()
	require.NotNil(t, s.Min)
	require.NotNil(t, s.Max)
	assert.InDelta(t, 1.0, *s.Min, 0)
	assert.InDelta(t, 10.0, *s.Max, 0)
	assert.Equal(t, "page size", s.Description)
	assert.Equal(t, 20, s.Default)
}

func TestDate(t *testing.T) {
	rule := jsonrule.Date(time.DateOnly).
		Min(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)).
		Max(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC))

	got, err := rule.Validate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = rule.Validate("2019-12-31")
	require.EqualError(t, err, "the date is out of range")

	_, err = rule.Validate("15/06/2025")
	require.EqualError(t, err, "must be a valid date")

	_, err = rule.Validate(20250615.0)
	require.ErrorIs(t, err, jsonrule.ErrInvalidType)

	out, err := rule.Dump(got)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", out)

	schema := rule.Schema()
	assert.Equal(t, "date", schema.Format)
	assert.Equal(t, "> 2020-01-01 < 2030-12-31", schema.Description)
	assert.Equal(t, "date-time", jsonrule.Date(time.RFC3339).Schema().Format)
}

func TestNullable(t *testing.T) {
	rule := jsonrule.Nullable[int64](jsonrule.Int())

	got, err := rule.Validate(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = rule.Validate(5.0)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 5, *got)

	_, err = rule.Validate("5")
	require.ErrorIs(t, err, jsonrule.ErrInvalidType)

	out, err := rule.Dump(nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	schema := jsonrule.SchemaOf(rule)
	assert.True(t, schema.Nullable)
	assert.True(t, schema.Type.Is(openapi3.TypeInteger))
	assert.False(t, jsonrule.Int().Schema().Nullable)
}

func TestFunc(t *testing.T) {
	errOdd := errors.New("must be even")
	even := jsonrule.Func(func(v any) (int64, error) {
		i, err := jsonrule.Int().Validate(v)
		if err != nil {
			return 0, err
		}
		if i%2 != 0 {
			return 0, errOdd
		}
		return i, nil
	}, nil, openapi3.NewInt64Schema())

	got, err := even.Validate(4.0)
	require.NoError(t, err)
	assert.EqualValues(t, 4, got)

	_, err = even.Validate(3.0)
	require.ErrorIs(t, err, errOdd)

	out, err := even.Dump(6)
	require.NoError(t, err)
	assert.EqualValues(t, 6, out)

	assert.True(t, jsonrule.SchemaOf(even).Type.Is(openapi3.TypeInteger))
	assert.Nil(t, jsonrule.SchemaOf(struct{}{}).Type)
}
