// Package openapi builds OpenAPI 3 documents whose request and response
// bodies are described by jsonrule rules.
//
// Use [DocBase] to create a base document and register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], then serve it with [DocsHandler]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/orders", "createOrders", openapi.Endpoint{
//	    Request:  ordersRule,
//	    Response: ordersRule,
//	})
//	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))
package openapi
