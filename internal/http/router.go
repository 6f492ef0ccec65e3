package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Auth     *AuthHandler
	Products *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Orders   *OrdersHandler

	Verifier TokenVerifier
	Admin    AdminChecker
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", deps.Auth.Signup)
		r.Post("/auth/login", deps.Auth.Login)

		r.Get("/products", deps.Products.ListProducts)
		r.Get("/products/{product_id}", deps.Products.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(deps.Verifier))

			r.Get("/users/me", deps.Auth.Me)
			r.Put("/users/me", deps.Auth.UpdateMe)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", deps.Cart.GetCart)
				r.Delete("/", deps.Cart.ClearCart)
				r.Post("/items", deps.Cart.AddItem)
				r.Put("/items/{variant_id}", deps.Cart.UpdateQuantity)
				r.Delete("/items/{variant_id}", deps.Cart.RemoveItem)
			})

			r.Post("/checkout", deps.Checkout.Checkout)

			r.Get("/orders", deps.Orders.ListOrders)
			r.Get("/orders/{order_id}", deps.Orders.GetOrder)

			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireAdmin(deps.Admin))

				r.Get("/orders", deps.Orders.ListAllOrders)
				r.Patch("/orders/{order_id}/status", deps.Orders.UpdateStatus)
			})
		})
	})

	return r
}
