// Package jsonrule converts untyped JSON values into typed Go values and back
// by composing small rules.
//
// Each [Rule] pairs a Validate direction (JSON to T) with a Dump direction
// (T to JSON). Rules exist for scalars ([String], [Int], [Float], [Bool],
// [Date]), objects ([Object] with [Expect] and [Optional]), arrays ([Array],
// [ConcurrentArray]) and maps ([Map], [Dict]), and nest freely:
//
//	type User struct {
//	    Name  string
//	    Email string
//	    Age   int64
//	}
//
//	var userRule = jsonrule.Object(
//	    jsonrule.Expect("name", jsonrule.String(jsonrule.Length(1, 100)), func(u *User) *string { return &u.Name }),
//	    jsonrule.Expect("email", jsonrule.String(is.Email), func(u *User) *string { return &u.Email }),
//	    jsonrule.Optional("age", jsonrule.Int(jsonrule.Min(0), jsonrule.Max(150)), func(u *User) *int64 { return &u.Age }),
//	)
//
//	users, err := jsonrule.Unmarshal(jsonrule.ConcurrentArray(userRule), body)
//
// Constraints are expressed as [Check] values, which wrap ozzo-validation
// rules and also describe themselves on the rule's OpenAPI schema
// (see [SchemaOf]).
//
// Sub-packages:
//   - batch – the parallel fan-out/fan-in engine behind [ConcurrentArray]
//   - is – common string format checks
//   - openapi – OpenAPI document helpers driven by rule schemas
//   - transform – string normalization for structs and raw JSON
package jsonrule
