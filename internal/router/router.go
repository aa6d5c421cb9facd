package router

import (
	"net/http"
	"time"

	"linderopos/internal/config"
	"linderopos/internal/handler"
	"linderopos/internal/middleware"
	"linderopos/internal/service"
	"linderopos/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← DocumentStore.
// It fails if any registered route lacks an access classification — routes
// can only be open or protected explicitly, never by omission.
func New(cfg *config.Config, st store.DocumentStore) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters): the session store must run
	// before the gate so the gate can read the marker.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(sessions.Sessions("pos_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	routes := middleware.NewRouteTable()
	r.Use(middleware.SessionGate(routes))

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	seedSvc := service.NewSeedService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	seedH := handler.NewSeedHandler(seedSvc)
	pagesH := handler.NewPagesHandler()

	r.LoadHTMLGlob("web/templates/*.html")

	// ── Routes ───────────────────────────────────────────────────────────────
	register := func(method, path string, access middleware.Access, handlers ...gin.HandlerFunc) {
		routes.Register(path, access)
		r.Handle(method, path, handlers...)
	}

	register(http.MethodGet, "/", middleware.AccessOpen, pagesH.Login)
	register(http.MethodPost, "/verify-pin", middleware.AccessOpen, middleware.PINRateLimiter(), authH.VerifyPIN)
	register(http.MethodGet, "/logout", middleware.AccessOpen, authH.Logout)
	register(http.MethodGet, "/healthz", middleware.AccessOpen, handler.Health())

	register(http.MethodGet, "/panel", middleware.AccessProtected, pagesH.Panel)
	register(http.MethodGet, "/seed", middleware.AccessProtected, seedH.Run)

	// Public read-only screens — open on purpose, see DESIGN.md
	register(http.MethodGet, "/receta", middleware.AccessOpen, pagesH.Receta)
	register(http.MethodGet, "/movimientos", middleware.AccessOpen, pagesH.Movimientos)
	register(http.MethodGet, "/hoy", middleware.AccessOpen, pagesH.Hoy)

	r.Static("/static", "./web/static")
	routes.Register("/static/*filepath", middleware.AccessOpen)

	if err := routes.Verify(r.Routes()); err != nil {
		return nil, err
	}
	return r, nil
}
