package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"campuspay/internal/domain/attendance"
	"campuspay/internal/domain/deduction"
	"campuspay/internal/domain/loan"
	"campuspay/internal/domain/payroll"
	"campuspay/internal/domain/salary"
	"campuspay/internal/platform/config"
	"campuspay/internal/platform/db"
	"campuspay/internal/platform/jobs"
	"campuspay/internal/platform/metrics"
	"campuspay/internal/transport/http/api"
	attendancehandler "campuspay/internal/transport/http/handlers/attendance"
	payrollhandler "campuspay/internal/transport/http/handlers/payroll"
	"campuspay/internal/transport/http/middleware"
)

func Run() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	collector := metrics.New()
	jobsService := jobs.New(pool)
	jobsService.Start(ctx)

	sched := attendance.Schedule{
		WorkStart:       cfg.WorkStartTime,
		WorkEnd:         cfg.WorkEndTime,
		GracePeriodMins: cfg.GracePeriodMinutes,
		LunchBreakMins:  cfg.LunchBreakMinutes,
	}
	attendanceService := attendance.NewService(attendance.NewStore(pool), sched)

	aggregator := payroll.NewAggregator(
		payroll.NewStore(pool),
		attendanceService,
		salary.NewStore(pool),
		deduction.NewStore(pool),
		loan.NewStore(pool),
		payroll.Options{
			Divisors: salary.Divisors{
				WorkDaysPerMonth:  cfg.WorkDaysPerMonth,
				WorkMinutesPerDay: cfg.WorkMinutesPerDay,
				UnitsPerMonth:     cfg.UnitsPerMonth,
			},
			LatePolicy:      cfg.LatePolicy,
			GrossProration:  cfg.GrossProration,
			Workers:         cfg.BatchWorkers,
			EmployeeTimeout: cfg.EmployeeTimeout,
		},
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(1 << 20))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		payrollhandler.NewHandler(aggregator, jobsService, collector).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService, jobsService).RegisterRoutes(r)
	})

	log.Printf("campuspay server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
