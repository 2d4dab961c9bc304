package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"hrdesk/internal/contract"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/discipline"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/domain/training"
	"hrdesk/internal/platform/config"
	cryptoutil "hrdesk/internal/platform/crypto"
	"hrdesk/internal/platform/db"
	"hrdesk/internal/platform/email"
	"hrdesk/internal/platform/logger"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/transport/http/api"
	contracthandler "hrdesk/internal/transport/http/handlers/contract"
	corehandler "hrdesk/internal/transport/http/handlers/core"
	disciplinehandler "hrdesk/internal/transport/http/handlers/discipline"
	leavehandler "hrdesk/internal/transport/http/handlers/leave"
	notificationshandler "hrdesk/internal/transport/http/handlers/notifications"
	reportshandler "hrdesk/internal/transport/http/handlers/reports"
	traininghandler "hrdesk/internal/transport/http/handlers/training"
	"hrdesk/internal/transport/http/middleware"
)

// App holds the process wide handles. DB is nil with the memory store driver.
type App struct {
	Config   config.Config
	DB       *pgxpool.Pool
	Router   http.Handler
	Metrics  *metrics.Collector
	Services Services
}

type Services struct {
	Employees     *core.Service
	Leave         *leave.Service
	Discipline    *discipline.Service
	Training      *training.Service
	Notifications *notifications.Service
	Reports       *reports.Service
}

type stores struct {
	employees     core.StoreAPI
	leave         leave.StoreAPI
	discipline    discipline.StoreAPI
	training      training.StoreAPI
	notifications notifications.StoreAPI
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Metrics: metrics.New()}

	var st stores
	if cfg.UsesPostgres() {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.DB = pool
		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		cipher, err := cryptoutil.NewFieldCipher(cfg.DataEncryptionKey)
		if err != nil {
			pool.Close()
			return nil, err
		}
		st = stores{
			employees:     core.NewStore(pool, cipher),
			leave:         leave.NewStore(pool),
			discipline:    discipline.NewStore(pool),
			training:      training.NewStore(pool),
			notifications: notifications.NewStore(pool),
		}
	} else {
		st = stores{
			employees:     core.NewMemoryStore(),
			leave:         leave.NewMemoryStore(),
			discipline:    discipline.NewMemoryStore(),
			training:      training.NewMemoryStore(),
			notifications: notifications.NewMemoryStore(),
		}
	}

	var mailer notifications.Mailer
	if cfg.EmailEnabled {
		mailer = email.New(cfg)
	}
	notifier := notifications.New(st.notifications, mailer, cfg.EmailFrom, cfg.HRNotifyEmail)
	notifier.Metrics = app.Metrics

	employees := core.NewService(st.employees)
	svc := Services{
		Employees:     employees,
		Leave:         leave.NewService(st.leave, employees, notifier, cfg.NotifyTimeout),
		Discipline:    discipline.NewService(st.discipline, employees),
		Training:      training.NewService(st.training, employees),
		Notifications: notifier,
	}
	svc.Reports = reports.NewService(svc.Employees, svc.Leave, svc.Discipline, svc.Training)
	app.Services = svc

	if cfg.RunSeed {
		if err := Seed(ctx, svc); err != nil {
			app.Close()
			return nil, err
		}
	}

	router, err := app.routes()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Router = router
	return app, nil
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
	}
}

func (a *App) routes() (http.Handler, error) {
	cfg := a.Config
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if a.DB != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := a.DB.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.OK(w, a.Metrics.Snapshot())
		})
	}

	var routeErr error
	router.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, cfg.TrustProxyHeaders))
		routeErr = registerEndpoints(r,
			corehandler.NewHandler(a.Services.Employees).Handlers(),
			leavehandler.NewHandler(a.Services.Leave).Handlers(),
			disciplinehandler.NewHandler(a.Services.Discipline).Handlers(),
			traininghandler.NewHandler(a.Services.Training).Handlers(),
			notificationshandler.NewHandler(a.Services.Notifications).Handlers(),
			reportshandler.NewHandler(a.Services.Reports).Handlers(),
			contracthandler.NewHandler().Handlers(),
		)
		r.HandleFunc("/api/*", func(w http.ResponseWriter, r *http.Request) {
			api.Fail(w, http.StatusNotFound, "Not found")
		})
	})
	if routeErr != nil {
		return nil, routeErr
	}

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})
	return router, nil
}

// registerEndpoints mounts every contract endpoint on r. Each endpoint must have exactly
// one handler and every handler must belong to an endpoint.
func registerEndpoints(r chi.Router, sets ...map[string]http.HandlerFunc) error {
	handlers := map[string]http.HandlerFunc{}
	for _, set := range sets {
		for name, h := range set {
			if _, dup := handlers[name]; dup {
				return fmt.Errorf("duplicate handler for endpoint %s", name)
			}
			handlers[name] = h
		}
	}
	for _, ep := range contract.Endpoints {
		h, ok := handlers[ep.Name]
		if !ok {
			return fmt.Errorf("no handler for endpoint %s", ep.Name)
		}
		r.Method(ep.Method, ep.Path, h)
		delete(handlers, ep.Name)
	}
	for name := range handlers {
		return fmt.Errorf("handler %s has no contract endpoint", name)
	}
	return nil
}

func Run() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFilePath)
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Str("store", cfg.StoreDriver).Msg("hrdesk server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server failed")
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
