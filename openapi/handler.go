package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// DocsHandler returns an http.Handler that serves doc as JSON. The document
// is validated and encoded once, when the handler is built.
//
//	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))
func DocsHandler(doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(specJSON)
	}), nil
}

// DocsHandlerMust is like [DocsHandler] but panics on error.
func DocsHandlerMust(doc *openapi3.T) http.Handler {
	h, err := DocsHandler(doc)
	if err != nil {
		panic(err)
	}
	return h
}
