// Command example demonstrates jsonrule with an HTTP server that accepts
// batches of orders and serves its own OpenAPI document.
//
// Run:
//
//	go run ./_example
//
// Then POST a JSON array to http://localhost:8080/orders. Orders that fail
// validation are logged and left out of the response; the batch is rejected
// only when more than a quarter of it is invalid.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"

	v "github.com/Gobd/jsonrule"
	"github.com/Gobd/jsonrule/batch"
	"github.com/Gobd/jsonrule/is"
	"github.com/Gobd/jsonrule/openapi"
	"go.uber.org/zap"
)

// Order is a sample request/response type.
type Order struct {
	CustomerName  string
	CustomerEmail string
	ItemCount     int64
	Total         float64
}

var orderRule = v.Object(
	v.Expect("customer_name", v.String(v.Length(1, 200)), func(o *Order) *string { return &o.CustomerName }),
	v.Expect("customer_email", v.String(is.Email), func(o *Order) *string { return &o.CustomerEmail }),
	v.Expect("item_count", v.Int(v.Min(1)), func(o *Order) *int64 { return &o.ItemCount }),
	v.Expect("total", v.Float(v.Min(0.01)), func(o *Order) *float64 { return &o.Total }),
)

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string
}

var errorRule = v.Object(
	v.Expect("error", v.String(), func(e *ErrorResponse) *string { return &e.Error }),
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	doc := openapi.DocBase("Example API", "Demonstrates jsonrule", "0.1.0")
	openapi.Post(doc, "/orders", "createOrders", openapi.Endpoint{
		Summary: "Create a batch of orders",
		Request: v.ConcurrentArray(orderRule),
		Responses: map[string]openapi.Response{
			"200": {Desc: "Accepted orders", Bodies: []any{v.ConcurrentArray(orderRule)}},
			"400": {Desc: "Validation error", Bodies: []any{errorRule}},
		},
	})

	http.Handle("/docs.json", openapi.DocsHandlerMust(doc))
	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var raw []any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, err)
			return
		}

		var dropped atomic.Int64
		rule := v.ConcurrentArray(orderRule,
			batch.WithName("orders"),
			batch.WithLimit(16),
			batch.WithLogger(logger),
			batch.OnFailure(func(i int, err error) error {
				if 4*(dropped.Add(1)) > int64(len(raw)) {
					return fmt.Errorf("too many invalid orders, last at %d: %w", i, err)
				}
				return nil
			}),
		)

		orders, err := rule.ValidateContext(r.Context(), raw)
		if err != nil {
			writeError(w, err)
			return
		}

		out, err := rule.DumpContext(r.Context(), orders)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("OpenAPI document: http://localhost:8080/docs.json")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

func writeError(w http.ResponseWriter, err error) {
	body, mErr := v.Marshal(errorRule, ErrorResponse{Error: err.Error()})
	if mErr != nil {
		http.Error(w, mErr.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(body)
}
