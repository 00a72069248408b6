package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints under /calculator.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		for _, op := range []Operator{Add, Subtract, Multiply, Divide} {
			r.Post("/"+op.Name(), BinaryOp(op))
		}
		r.Post("/chain", Chain)
		r.Post("/keys", Keys)
	})
}
