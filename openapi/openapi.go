package openapi

import (
	"errors"
	"net/http"

	"github.com/Gobd/jsonrule"
	"github.com/getkin/kin-openapi/openapi3"
)

const contentType = "application/json"

// Response describes an HTTP response with a description and the rules of
// its possible bodies.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for the convenience helpers
// [Get], [Post], [Put], [Patch], and [Delete]. Bodies are rules; anything
// implementing [jsonrule.Schemer] contributes its schema.
type Endpoint struct {
	Summary     string
	Description string
	Request     any                 // single request body rule (convenience)
	Requests    []any               // multiple request body rules (oneOf)
	Response    any                 // single 200 response rule (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// NewSchemaRef returns the schema of rule as a reference ready for a document.
func NewSchemaRef(rule any) *openapi3.SchemaRef {
	return jsonrule.NewSchemaRef(rule)
}

// jsonContent wraps the schemas of rules in an application/json content
// entry, using oneOf when there is more than one.
func jsonContent(rules []any) openapi3.Content {
	refs := make(openapi3.SchemaRefs, len(rules))
	for i, r := range rules {
		refs[i] = NewSchemaRef(r)
	}
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.Content{contentType: &openapi3.MediaType{Schema: schema}}
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(rules ...any) *openapi3.RequestBodyRef {
	o, err := NewRequest(rules...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest builds a JSON request body from the given rules.
func NewRequest(rules ...any) (*openapi3.RequestBodyRef, error) {
	if len(rules) == 0 {
		return nil, errors.New("no rules given")
	}
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithContent(jsonContent(rules)),
	}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
// Map key is status code (e.g. "200", "4xx").
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no responses given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode, r := range vs {
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		if len(r.Bodies) > 0 {
			resp.Content = jsonContent(r.Bodies)
		}
		opts = append(opts, openapi3.WithName(statusCode, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

// DocBase returns a basic OpenAPI 3.0.3 document structure.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath adds an operation to the OpenAPI document at the given path and method.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	s.Paths.Set(path, p)
}

// addEndpoint builds an [openapi3.Operation] from ep and registers it at path+method.
func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
