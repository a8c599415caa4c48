package jsonrule

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	minTests := []struct {
		min         any
		value       any
		expectError bool
	}{
		{min: 0.0, value: 1.0, expectError: false},
		{min: 0.0, value: 1, expectError: true}, // 1 is an int not a float
		{min: 0.0, value: "1", expectError: false},
		{min: 0.0, value: "-1", expectError: true},
		{min: 0.0, value: "abc", expectError: true},
		{min: 0.0, value: nil, expectError: false}, // Skips empty
		{min: 0.0, value: []int{1}, expectError: true},
		{min: 0.0, value: json.Number("1"), expectError: false},
		{min: 1, value: int64(1), expectError: false},
		{min: 1, value: "0", expectError: true}, // "0" is not empty
		{min: 1, value: "x", expectError: true},
		{min: 1, value: int64(0), expectError: true}, // zero is compared, not skipped
		{min: 0.5, value: 0.0, expectError: true},
		{min: 1, value: "", expectError: false},
		{min: uint(2), value: uint64(1), expectError: true},
	}
	for _, tt := range minTests {
		t.Run(fmt.Sprintf("min:%v,v:%v", tt.min, tt.value), func(t *testing.T) {
			err := Min(tt.min).Validate(tt.value)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}

	maxTests := []struct {
		max         float64
		value       any
		expectError bool
	}{
		{max: 2, value: "2", expectError: false},
		{max: 2, value: "3", expectError: true},
		{max: 2, value: "1", expectError: false},
		{max: 5.5, value: "5.6", expectError: true},
		{max: 5.5, value: "5.4", expectError: false},
		{max: 5.5, value: "5.5", expectError: false},
		{max: -1, value: 0.0, expectError: true},
	}
	for _, tt := range maxTests {
		t.Run(fmt.Sprintf("max:%v,v:%v", tt.max, tt.value), func(t *testing.T) {
			err := Max(tt.max).Validate(tt.value)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}

func TestMinMax_Zero(t *testing.T) {
	_, err := Int(Min(1)).Validate(0.0)
	require.EqualError(t, err, "must be no less than 1")

	_, err = Float(Max(-0.5)).Validate(0.0)
	require.EqualError(t, err, "must be no greater than -0.5")

	got, err := Int(Min(0)).Validate(0.0)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMinMax_Describe(t *testing.T) {
	schema := openapi3.NewIntegerSchema()
	require.NoError(t, Min(5).Describe(schema))
	require.NoError(t, Max(100).Describe(schema))
	require.NotNil(t, schema.Min)
	require.NotNil(t, schema.Max)
	assert.Equal(t, float64(5), *schema.Min)
	assert.Equal(t, float64(100), *schema.Max)
	assert.Empty(t, schema.Format)

	// numeric strings get the threshold type as their format
	str := openapi3.NewStringSchema()
	require.NoError(t, Min(0.0).Describe(str))
	assert.Equal(t, "float64", str.Format)

	assert.Error(t, Min("a").Describe(openapi3.NewSchema()))
}
