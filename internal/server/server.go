package server

import (
	"fmt"
	"net/http"

	"github.com/glacierdata/lakecatsrv/internal/apis"
	"github.com/glacierdata/lakecatsrv/internal/config"
	"github.com/glacierdata/lakecatsrv/internal/server/middleware"
	"github.com/glacierdata/lakecatsrv/pkg/api"
	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/common/hatchservicemiddleware"
	"github.com/mugiliam/common/httpx"
	"github.com/mugiliam/common/logtrace"
	"github.com/rs/zerolog/log"
)

type LakeCatalogServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*LakeCatalogServer, error) {
	s := &LakeCatalogServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

func (s *LakeCatalogServer) MountHandlers() {
	s.Router.Use(hatchservicemiddleware.RequestLogger)
	if config.Config().HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Route("/tenant/{tenantId}/warehouses", s.mountWarehouseHandlers)
	if logtrace.IsTraceEnabled() {
		//print all the routes in the router by transversing the tree and printing the patterns
		fmt.Println("Routes in tenant router")
		walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
			fmt.Printf("%s %s\n", method, route)
			return nil
		}
		if err := chi.Walk(s.Router, walkFunc); err != nil {
			fmt.Printf("Logging err: %s\n", err.Error())
		}
	}
}

func (s *LakeCatalogServer) mountWarehouseHandlers(r chi.Router) {
	r.Use(middleware.LoadContext)
	r.Use(middleware.LoadScopedDB)
	r.Get("/version", s.getVersion)
	apis.Router(r)
}

func (s *LakeCatalogServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &api.GetVersionRsp{
		ServerVersion: "LakeCatSrv: 1.0.0", //TODO - Implement server versioning
		ApiVersion:    api.ApiVersion_1_0,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

func (s *LakeCatalogServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Set CORS headers
		w.Header().Set("Access-Control-Allow-Origin", config.Config().CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Hatch-IDToken")

		// Check if the request method is OPTIONS
		if r.Method == "OPTIONS" {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			// Respond with appropriate headers and no body
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
