// Package httpapi assembles the chi router. Handlers stay thin; route
// grouping is where the AuthGate scoping is decided and nowhere else.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cataloghandler "sportreg/internal/catalog/handler"
	enrollmenthandler "sportreg/internal/enrollment/handler"
	identityhandler "sportreg/internal/identity/handler"
	"sportreg/internal/identity/models"
	platformmiddleware "sportreg/internal/platform/middleware"
	authmw "sportreg/pkg/platform/middleware/auth"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Identity   *identityhandler.Handler
	Enrollment *enrollmenthandler.Handler
	Catalog    *cataloghandler.Handler
	Verifier   authmw.TokenVerifier
	Logger     *slog.Logger
}

// NewRouter wires all endpoints. Registration, login, and the sport listing
// are public; everything else sits behind the role-scoped gate.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(platformmiddleware.RequestID)
	r.Use(platformmiddleware.Logging(d.Logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		d.Identity.RegisterPublic(r)
		d.Catalog.RegisterPublic(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireRole(models.RoleParticipant, d.Verifier, d.Logger))
		d.Enrollment.RegisterParticipantScoped(r)
		d.Identity.RegisterParticipantScoped(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireRole(models.RoleJudge, d.Verifier, d.Logger))
		d.Enrollment.RegisterJudgeScoped(r)
		d.Catalog.RegisterJudgeScoped(r)
	})

	return r
}
