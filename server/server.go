package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stocktrail/stocktrail/auth"
	"github.com/stocktrail/stocktrail/inventory"
	"github.com/stocktrail/stocktrail/sessions"
	"github.com/stocktrail/stocktrail/users"
)

// backend labels the store behind an inventory surface for response messages.
type backend struct {
	label       string // "MySQL" or "MongoDB"
	createdIn   string
	updatedIn   string
	deletedFrom string
}

var (
	backendMySQL = backend{
		label:       "MySQL",
		createdIn:   "Item created successfully in MySQL",
		updatedIn:   "Item updated successfully in MySQL",
		deletedFrom: "Item deleted successfully from MySQL",
	}
	backendMongo = backend{
		label:       "MongoDB",
		createdIn:   "Item created successfully in MongoDB",
		updatedIn:   "Item updated successfully in MongoDB",
		deletedFrom: "Item deleted successfully from MongoDB",
	}
)

// Server is the HTTP dispatcher over the auth and inventory services. Every
// gated route resolves the session cookie first, then the role gate, then
// the service call.
type Server struct {
	mux      *chi.Mux
	auth     *auth.Service
	sessions sessions.Repo
	users    users.Repo
	rowItems *inventory.Service // scoped reads, backed by the row store
	docItems *inventory.Service // role-split reads, backed by the document store
}

// Deps bundles the collaborators the server dispatches to.
type Deps struct {
	Auth     *auth.Service
	Sessions sessions.Repo
	Users    users.Repo
	RowItems *inventory.Service
	DocItems *inventory.Service
}

func New(deps Deps) *Server {
	s := &Server{
		mux:      chi.NewRouter(),
		auth:     deps.Auth,
		sessions: deps.Sessions,
		users:    deps.Users,
		rowItems: deps.RowItems,
		docItems: deps.DocItems,
	}
	s.initRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
