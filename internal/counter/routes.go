package counter

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router) {
	r.Route("/counter", func(r chi.Router) {
		r.Post("/dispatch", DispatchHandler)
	})
}
