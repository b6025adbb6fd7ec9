package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"smartlibrary/config"
	"smartlibrary/handlers"
	"smartlibrary/middleware"
	"smartlibrary/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.NewMongoDB(connectCtx, cfg.MongoURI, cfg.DBName)
	cancelConnect()
	if err != nil {
		log.Fatal("mongodb: ", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()

	books := &handlers.BooksHandler{Store: db}

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins, cfg.Production))
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Metrics())

	r.Get("/", handlers.Banner)
	r.Get("/health", handlers.Health)
	r.Get("/metrics", middleware.MetricsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/books", books.List)
		r.Post("/books", books.Create)
		r.Delete("/books/{id}", books.Delete)
	})

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
