package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	getTourHandler "github.com/m04kA/SMC-TourCatalog/internal/api/handlers/get_tour"
	listCategoriesHandler "github.com/m04kA/SMC-TourCatalog/internal/api/handlers/list_categories"
	listToursHandler "github.com/m04kA/SMC-TourCatalog/internal/api/handlers/list_tours"
	submitLeadHandler "github.com/m04kA/SMC-TourCatalog/internal/api/handlers/submit_lead"
	"github.com/m04kA/SMC-TourCatalog/internal/api/middleware"
	"github.com/m04kA/SMC-TourCatalog/internal/config"
	leadRepo "github.com/m04kA/SMC-TourCatalog/internal/infra/storage/lead"
	tourRepo "github.com/m04kA/SMC-TourCatalog/internal/infra/storage/tour"
	"github.com/m04kA/SMC-TourCatalog/internal/scheduler"
	catalogService "github.com/m04kA/SMC-TourCatalog/internal/service/catalog"
	leadsService "github.com/m04kA/SMC-TourCatalog/internal/service/leads"
	filterToursUC "github.com/m04kA/SMC-TourCatalog/internal/usecase/filter_tours"
	"github.com/m04kA/SMC-TourCatalog/pkg/logger"
	"github.com/m04kA/SMC-TourCatalog/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TourCatalog...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// nil-коллектор безопасен: методы записи метрик ничего не делают
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Metrics.Enabled {
		metricsCollector.RegisterDBStats(db, cfg.Database.DBName)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	tourRepository := tourRepo.NewRepository(db)
	leadRepository := leadRepo.NewRepository(db)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(tourRepository, metricsCollector, log)
	leadsSvc := leadsService.NewService(leadRepository, catalogSvc, metricsCollector, log)

	// Первичная загрузка каталога. При ошибке сервис стартует,
	// а запросы к каталогу получают 503 до первого успешного обновления
	loadTimeout := time.Duration(cfg.Catalog.LoadTimeout) * time.Second
	loadCtx, loadCancel := context.WithTimeout(context.Background(), loadTimeout)
	if err := catalogSvc.Refresh(loadCtx); err != nil {
		log.Warn("Initial catalog load failed, will retry on next refresh: %v", err)
	}
	loadCancel()

	// Периодическое обновление каталога
	refresherCtx, stopRefresher := context.WithCancel(context.Background())
	defer stopRefresher()

	catalogScheduler := scheduler.New(catalogSvc, log, cfg.Catalog.RefreshInterval, loadTimeout)
	if err := catalogScheduler.Start(refresherCtx); err != nil {
		log.Fatal("Failed to start catalog scheduler: %v", err)
	}

	// Инициализируем use cases
	filterToursUseCase := filterToursUC.NewUseCase(
		catalogSvc,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listTours := listToursHandler.NewHandler(filterToursUseCase, log)
	getTour := getTourHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	submitLead := submitLeadHandler.NewHandler(leadsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	// Поиск и фильтрация туров
	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)

	// Навигация по категориям (регистрируется раньше /tours/{tourId})
	api.HandleFunc("/tours/categories", listCategories.Handle).Methods(http.MethodGet)

	// Карточка тура
	api.HandleFunc("/tours/{tourId:[0-9]+}", getTour.Handle).Methods(http.MethodGet)

	// --- Формы сайта ---
	// Бронирование, расчет стоимости, контакты, регистрация гидов
	api.HandleFunc("/leads", submitLead.Handle).Methods(http.MethodPost)

	// CORS оборачивает весь роутер: mux не вызывает middleware для preflight OPTIONS
	handler := middleware.CORS(cfg.CORS.AllowedOrigins)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// Останавливаем обновление каталога
	stopRefresher()
	catalogScheduler.Stop(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
