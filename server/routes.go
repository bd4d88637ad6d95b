package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stocktrail/stocktrail/inventory"
	"github.com/stocktrail/stocktrail/users"
)

func (s *Server) initRoutes() {
	s.mux.Use(middleware.Recoverer)
	s.mux.Use(requestLogger)

	s.mux.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.RegisterHandler())
		r.Post("/login", s.LoginHandler())
		r.Post("/logout", s.LogoutHandler())
	})

	s.mux.Route("/mysql/items", s.itemRoutes(s.rowItems, backendMySQL))
	s.mux.Route("/mongo/items", s.itemRoutes(s.docItems, backendMongo))

	s.mux.Route("/admin", func(r chi.Router) {
		r.Use(s.RequireSession)
		r.Use(s.RequireRole(users.RoleAdmin, "Admins only"))
		r.Get("/users", s.ListUsersHandler())
	})

	s.mux.Route("/user", func(r chi.Router) {
		r.Use(s.RequireSession)
		r.Use(s.RequireRole(users.RoleUser, "Users only"))
		r.Get("/inventory", s.OwnInventoryHandler())
	})
}

// itemRoutes wires one inventory surface. Both surfaces share the same
// shape: session required everywhere, writes gated to admins, reads open to
// any authenticated role.
func (s *Server) itemRoutes(svc *inventory.Service, b backend) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(s.RequireSession)

		r.Group(func(w chi.Router) {
			w.Use(s.RequireRole(users.RoleAdmin, "Unauthorized access. Admins only."))
			w.Post("/", s.CreateItemHandler(svc, b))
			w.Put("/{itemID}", s.UpdateItemHandler(svc, b))
			w.Delete("/{itemID}", s.DeleteItemHandler(svc, b))
		})

		r.Get("/", s.ListItemsHandler(svc))
		r.Get("/{itemID}", s.GetItemHandler(svc))
	}
}
