package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Connecteamed/connected-be/internal/collab/service"
	"github.com/Connecteamed/connected-be/internal/collab/store"
	"github.com/Connecteamed/connected-be/pkg/httpx"
	"github.com/Connecteamed/connected-be/pkg/jwtx"
	"github.com/Connecteamed/connected-be/pkg/slogx"

	_ "github.com/Connecteamed/connected-be/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	MemberService  *service.MemberService
	ProjectService *service.ProjectService
	InviteService  *service.InviteService
}

func NewRouter(
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProjects()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Connected Collaboration Service API
//	@version		0.1.0
//	@description	Project collaboration backend centred on invite-code issuance
//	@description	and redemption. Access tokens are HS256 JWTs minted at login.
//
//	@contact.name				Connecteamed
//	@contact.url				https://github.com/Connecteamed/connected-be
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signupHandler := &SignupHandler{MemberService: r.MemberService}
	loginHandler := &LoginHandler{MemberService: r.MemberService}

	// POST /auth/signup - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProjects() {
	createHandler := &ProjectCreateHandler{ProjectService: r.ProjectService}
	listHandler := &ProjectListHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("POST /projects",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /projects",
		httpx.Chain(listHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerInvites() {
	issueHandler := &InviteIssueHandler{InviteService: r.InviteService}
	joinHandler := &InviteJoinHandler{InviteService: r.InviteService}

	// GET /invite/{projectID} - moderate rate limit by member
	r.Mux.Handle("GET /invite/{projectID}",
		httpx.Chain(issueHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)

	// POST /invite/join - strict rate limit by member (guessing deterrent)
	r.Mux.Handle("POST /invite/join",
		httpx.Chain(joinHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByMember(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
