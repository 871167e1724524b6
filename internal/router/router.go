package router

import (
	"time"

	"github.com/Jhoansandoval1233/api-control-acceso/internal/config"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/handler"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/infra"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/middleware"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/repository"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/service"
	"github.com/Jhoansandoval1233/api-control-acceso/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Warn().Str("tz", cfg.TimeZone).Msg("unknown time zone, falling back to UTC")
		loc = time.UTC
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	personaRepo := repository.NewPersonaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg, dispatcher)
	personaSvc := service.NewPersonaService(personaRepo, loc, cfg.PDFStoragePath)
	vehiculoSvc := service.NewVehiculoService(vehiculoRepo, personaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	personasH := handler.NewPersonasHandler(personaSvc)
	vehiculosH := handler.NewVehiculosHandler(vehiculoSvc)
	consultaH := handler.NewConsultaAccesoHandler(personaRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	// Auth (public): login, refresh, self-registration and the no-login
	// password recovery path.
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/registro", authH.Registro)
		auth.POST("/restablecer", authH.RestablecerContrasena)
	}

	// Gate kiosk lookup — no auth required, read-only
	r.GET("/v1/consulta/:numero_documento", consultaH.GetPorDocumento)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Personas — any authenticated role can read; guards and admins write
		v1.GET("/personas", middleware.RequireRole("admin", "usuario", "guarda"), personasH.Listar)
		v1.GET("/personas/:id", middleware.RequireRole("admin", "usuario", "guarda"), personasH.ObtenerPorID)
		v1.GET("/personas/:id/vehiculos", middleware.RequireRole("admin", "usuario", "guarda"), vehiculosH.ListarPorPersona)
		v1.GET("/personas/documento/:numero_documento", middleware.RequireRole("admin", "usuario", "guarda"), personasH.BuscarPorDocumento)
		v1.GET("/personas/documento/:numero_documento/carnet", middleware.RequireRole("admin", "guarda"), personasH.DescargarCarnet)
		personas := v1.Group("/personas", middleware.RequireRole("admin", "guarda"))
		{
			personas.POST("", personasH.Crear)
			personas.PUT("/documento/:numero_documento", personasH.Actualizar)
			personas.DELETE("/documento/:numero_documento", personasH.Eliminar)
		}

		// Vehiculos — same split
		v1.GET("/vehiculos", middleware.RequireRole("admin", "usuario", "guarda"), vehiculosH.Listar)
		v1.GET("/vehiculos/:id", middleware.RequireRole("admin", "usuario", "guarda"), vehiculosH.ObtenerPorID)
		v1.POST("/vehiculos", middleware.RequireRole("admin", "guarda"), vehiculosH.Crear)

		// Usuarios — administration only
		usuarios := v1.Group("/usuarios", middleware.RequireRole("admin"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.ObtenerPorID)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
