package webserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"f1telemetrydashboard/pkg/summary"
	"f1telemetrydashboard/pkg/telemetry"
)

const (
	defaultDriverNumber = 44
	defaultLapNumber    = 1
)

// Manager serves the dashboard API locally: one GET route dispatching on
// the type query parameter, same shape as the deployed Lambda.
type Manager struct {
	r              *mux.Router
	addr           string
	requestTimeout time.Duration
	builder        *summary.Builder
	extractor      *telemetry.Extractor
}

func NewManager(addr string, requestTimeout time.Duration, builder *summary.Builder, extractor *telemetry.Extractor) *Manager {
	m := &Manager{
		r:              mux.NewRouter(),
		addr:           addr,
		requestTimeout: requestTimeout,
		builder:        builder,
		extractor:      extractor,
	}

	m.rootHandlers()
	return m
}

func (m *Manager) router() *mux.Router {
	return m.r
}

func (m *Manager) rootHandlers() {
	m.r.Use(corsMiddleware, recoverMiddleware)
	m.r.HandleFunc("/", m.handleAPI).Methods(http.MethodGet, http.MethodOptions)
}

// corsMiddleware lets the dashboard frontend call from any origin and
// answers CORS preflights directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverMiddleware converts an unexpected panic anywhere below into a
// generic JSON failure instead of tearing the connection down.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("webserver: panic serving %s: %v", r.URL.Path, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprint(rec)})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (m *Manager) handleAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if m.requestTimeout > 0 {
		// overall deadline across the ~30 remote calls a summary issues
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.requestTimeout)
		defer cancel()
	}

	params := r.URL.Query()
	requestType := params.Get("type")
	if requestType == "" {
		requestType = "summary"
	}

	var data any
	switch requestType {
	case "summary":
		log.Println("webserver: building summary")
		data = m.builder.Build(ctx)
	case "telemetry":
		driverNumber := intParam(params.Get("driver_number"), defaultDriverNumber)
		lapNumber := intParam(params.Get("lap_number"), defaultLapNumber)
		log.Printf("webserver: extracting telemetry for driver %d lap %d", driverNumber, lapNumber)
		data = m.extractor.Extract(ctx, driverNumber, lapNumber)
	default:
		data = map[string]string{"error": fmt.Sprintf("Unknown type: %s", requestType)}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("webserver: encoding response: %s", err)
	}
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (m *Manager) Serve() {
	srv := &http.Server{
		Addr: m.addr,
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: m.requestTimeout + time.Second*15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.router(),
	}

	// Run our server in a goroutine so that it doesn't block.
	go func() {
		log.Printf("webserver listening on %s\n", m.addr)
		if err := srv.ListenAndServe(); err != nil {
			log.Println(err)
		}
	}()

	c := make(chan os.Signal, 1)
	// We'll accept graceful shutdowns when quit via SIGINT (Ctrl+C)
	signal.Notify(c, os.Interrupt)

	// Block until we receive our signal.
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Doesn't block if no connections, but will otherwise wait
	// until the timeout deadline.
	srv.Shutdown(ctx)
	log.Println("webserver shutting down")
}
