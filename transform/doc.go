// Package transform rewrites strings in place inside structs, or in copies of
// raw JSON values. The struct helpers fit jsonrule's ObjectRule.Normalize;
// the raw helpers fit jsonrule.Preprocess.
package transform
