package jsonrule_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/Gobd/jsonrule"
	"github.com/Gobd/jsonrule/transform"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Nick *string
}

type address struct {
	Street string
	City   string
}

type customer struct {
	Name    string
	Email   string
	Tier    string
	Tags    []string
	Address address
	Notes   *string
}

var addressRule = jsonrule.Object(
	jsonrule.Expect("street", jsonrule.String(jsonrule.Length(1, 0)), func(a *address) *string { return &a.Street }),
	jsonrule.Expect("city", jsonrule.String(), func(a *address) *string { return &a.City }),
)

var customerRule = jsonrule.Object(
	jsonrule.Expect("name", jsonrule.String(), func(c *customer) *string { return &c.Name }, jsonrule.Length(1, 20)),
	jsonrule.Expect("email", jsonrule.String(), func(c *customer) *string { return &c.Email }),
	jsonrule.Optional("tier", jsonrule.String(), func(c *customer) *string { return &c.Tier }, jsonrule.In("free", "pro")),
	jsonrule.Optional("tags", jsonrule.Array(jsonrule.String()), func(c *customer) *[]string { return &c.Tags }),
	jsonrule.Expect("address", addressRule, func(c *customer) *address { return &c.Address }),
	jsonrule.Optional("notes", jsonrule.Nullable[string](jsonrule.String()), func(c *customer) **string { return &c.Notes }),
)

func validCustomer() map[string]any {
	return map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"tier":    "pro",
		"tags":    []any{"a", "b"},
		"address": map[string]any{"street": "1 Main", "city": "Springfield"},
	}
}

func TestObject_Valid(t *testing.T) {
	c, err := customerRule.Validate(validCustomer())
	require.NoError(t, err)
	assert.Equal(t, customer{
		Name:    "Ada",
		Email:   "ada@example.com",
		Tier:    "pro",
		Tags:    []string{"a", "b"},
		Address: address{Street: "1 Main", City: "Springfield"},
	}, c)
}

func TestObject_FieldErrors(t *testing.T) {
	in := validCustomer()
	delete(in, "email")
	in["tier"] = "gold"
	in["tags"] = "not-an-array"
	in["address"] = map[string]any{"city": "Springfield"}

	_, err := customerRule.Validate(in)
	require.Error(t, err)

	var errs jsonrule.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.ErrorIs(t, errs["email"], jsonrule.ErrMissing)
	assert.ErrorIs(t, errs["tags"], jsonrule.ErrInvalidType)
	assert.EqualError(t, errs["tier"], "must be one of 'free', 'pro' got 'gold'")

	var nested jsonrule.ValidationErrors
	require.True(t, errors.As(errs["address"], &nested))
	assert.ErrorIs(t, nested["street"], jsonrule.ErrMissing)
	assert.NotContains(t, errs, "name")
}

func TestObject_OptionalAbsentOrNull(t *testing.T) {
	in := validCustomer()
	delete(in, "tier")
	in["tags"] = nil
	in["notes"] = nil

	c, err := customerRule.Validate(in)
	require.NoError(t, err)
	assert.Empty(t, c.Tier)
	assert.Nil(t, c.Tags)
	assert.Nil(t, c.Notes)
}

func TestObject_ExpectNull(t *testing.T) {
	in := validCustomer()
	in["name"] = nil
	_, err := customerRule.Validate(in)

	var errs jsonrule.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.ErrorIs(t, errs["name"], jsonrule.ErrInvalidType)
}

func TestObject_NotAnObject(t *testing.T) {
	_, err := customerRule.Validate([]any{})
	require.ErrorIs(t, err, jsonrule.ErrInvalidType)
	assert.EqualError(t, err, "value of unexpected type found: array, expected object")
}

func TestObject_Normalize(t *testing.T) {
	rule := customerRule.Normalize(transform.StructTrimSpace, transform.StructToLower)

	in := validCustomer()
	in["name"] = " Ada "
	in["email"] = "  ADA@Example.COM "
	in["tier"] = " PRO "

	_, err := customerRule.Validate(in)
	var errs jsonrule.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "tier")

	c, err := rule.Validate(in)
	require.NoError(t, err, "checks run after normalization")
	assert.Equal(t, "pro", c.Tier)
	assert.Equal(t, "ada", c.Name)
	assert.Equal(t, "ada@example.com", c.Email)
	assert.Equal(t, "1 main", c.Address.Street)
}

type slug struct {
	Value string
}

func (s *slug) Normalize() {
	s.Value = strings.ReplaceAll(strings.ToLower(s.Value), " ", "-")
}

func TestObject_Normalizer(t *testing.T) {
	rule := jsonrule.Object(
		jsonrule.Expect("value", jsonrule.String(), func(s *slug) *string { return &s.Value }, jsonrule.Match(regexp.MustCompile(`^[a-z-]+$`))),
	)

	got, err := rule.Validate(map[string]any{"value": "Hello World"})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", got.Value)

	var seen string
	_, err = rule.Normalize(func(v any) { seen = v.(*slug).Value }).Validate(map[string]any{"value": "A B"})
	require.NoError(t, err)
	assert.Equal(t, "a-b", seen, "Normalize runs before the added functions")
}

func TestObject_NormalizeCopies(t *testing.T) {
	var calls []string
	base := customerRule.Normalize(func(any) { calls = append(calls, "base") })
	a := base.Normalize(func(any) { calls = append(calls, "a") })
	b := base.Normalize(func(any) { calls = append(calls, "b") })

	_, err := a.Validate(validCustomer())
	require.NoError(t, err)
	_, err = b.Validate(validCustomer())
	require.NoError(t, err)
	_, err = base.Validate(validCustomer())
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "a", "base", "b", "base"}, calls)
}

type pager struct {
	Page int64
	Size int64
}

func TestObject_AbsentOptionalNotChecked(t *testing.T) {
	rule := jsonrule.Object(
		jsonrule.Expect("page", jsonrule.Int(), func(p *pager) *int64 { return &p.Page }, jsonrule.Min(1)),
		jsonrule.Optional("size", jsonrule.Int(), func(p *pager) *int64 { return &p.Size }, jsonrule.Min(1)),
	)

	got, err := rule.Validate(map[string]any{"page": 1.0})
	require.NoError(t, err)
	assert.Zero(t, got.Size)

	_, err = rule.Validate(map[string]any{"page": 0.0, "size": 0.0})
	var errs jsonrule.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.EqualError(t, errs["page"], "must be no less than 1")
	assert.EqualError(t, errs["size"], "must be no less than 1")
}

func TestObject_Strict(t *testing.T) {
	in := validCustomer()
	in["extra"] = true

	_, err := customerRule.Validate(in)
	require.NoError(t, err)

	_, err = customerRule.Strict().Validate(in)
	var errs jsonrule.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.ErrorIs(t, errs["extra"], jsonrule.ErrUnknownKey)
}

func TestObject_Dump(t *testing.T) {
	notes := "vip"
	c := customer{
		Name:    "Ada",
		Email:   "ada@example.com",
		Address: address{Street: "1 Main", City: "Springfield"},
		Notes:   &notes,
	}
	out, err := customerRule.Dump(c)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"tier":    "",
		"address": map[string]any{"street": "1 Main", "city": "Springfield"},
		"notes":   "vip",
	}, out)

	back, err := customerRule.Validate(out)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestObject_Schema(t *testing.T) {
	schema := customerRule.Strict().Schema()

	assert.True(t, schema.Type.Is(openapi3.TypeObject))
	assert.Equal(t, []string{"name", "email", "address"}, schema.Required)
	require.NotNil(t, schema.AdditionalProperties.Has)
	assert.False(t, *schema.AdditionalProperties.Has)

	name := schema.Properties["name"].Value
	assert.EqualValues(t, 1, name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.EqualValues(t, 20, *name.MaxLength)

	assert.Equal(t, []any{"free", "pro"}, schema.Properties["tier"].Value.Enum)
	assert.True(t, schema.Properties["notes"].Value.Nullable)
	assert.True(t, schema.Properties["tags"].Value.Type.Is(openapi3.TypeArray))
	assert.Equal(t, []string{"street", "city"}, schema.Properties["address"].Value.Required)

	again := customerRule.Schema()
	assert.Equal(t, name.MinLength, again.Properties["name"].Value.MinLength, "schemas are rebuilt, not shared")
}
