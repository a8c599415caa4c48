package jsonrule

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdCheck struct {
	validation.ThresholdRule
	threshold any
	min       bool
}

// Min returns a check that a value is greater than or equal to threshold.
// Numeric strings are compared as numbers of the threshold's kind.
func Min(threshold any) Check {
	return thresholdCheck{
		validation.Min(threshold),
		threshold,
		true,
	}
}

// Max returns a check that a value is less than or equal to threshold.
func Max(threshold any) Check {
	return thresholdCheck{
		validation.Max(threshold),
		threshold,
		false,
	}
}

func (c thresholdCheck) Describe(schema *openapi3.Schema) error {
	if schema.Type.Is(openapi3.TypeString) && schema.Format == "" {
		schema.Format = fmt.Sprintf("%T", c.threshold)
	}
	f, err := getFloat(c.threshold)
	if err != nil {
		return err
	}
	if c.min {
		schema.Min = &f
	} else {
		schema.Max = &f
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.IsValid() || !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %T to float64", unk)
	}
	return v.Convert(floatType).Float(), nil
}

// Validate compares value against the threshold. Only nil and "" are
// skipped; zero is compared like any other number.
func (c thresholdCheck) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		s := rv.String()
		if s == "" {
			return nil
		}
		var err error
		switch reflect.ValueOf(c.threshold).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if value, err = strconv.ParseInt(s, 10, 64); err != nil {
				return errors.New("must be int64")
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if value, err = strconv.ParseUint(s, 10, 64); err != nil {
				return errors.New("must be uint64")
			}
		case reflect.Float32, reflect.Float64:
			if value, err = strconv.ParseFloat(s, 64); err != nil {
				return errors.New("must be float64")
			}
		}
	}

	order, err := c.compare(value)
	if err != nil {
		return err
	}
	if c.min && order < 0 {
		return validation.ErrMinGreaterEqualThanRequired.SetParams(map[string]any{"threshold": c.threshold})
	}
	if !c.min && order > 0 {
		return validation.ErrMaxLessEqualThanRequired.SetParams(map[string]any{"threshold": c.threshold})
	}
	return nil
}

// compare returns -1, 0 or 1 as value is below, at or above the threshold,
// converting value to the threshold's kind. Other threshold kinds, such as
// time.Time, are left to ozzo's rule, whose error is returned as is.
func (c thresholdCheck) compare(value any) (int, error) {
	t := reflect.ValueOf(c.threshold)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := validation.ToInt(value)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(v, t.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := validation.ToUint(value)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(v, t.Uint()), nil
	case reflect.Float32, reflect.Float64:
		v, err := validation.ToFloat(value)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(v, t.Float()), nil
	}
	return 0, c.ThresholdRule.Validate(value)
}
