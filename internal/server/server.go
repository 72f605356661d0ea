package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dotworks/PixieBot_Go/internal/accrual"
	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/database"
	"github.com/dotworks/PixieBot_Go/internal/enchant"
	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/forge"
	"github.com/dotworks/PixieBot_Go/internal/gamble"
	"github.com/dotworks/PixieBot_Go/internal/handler"
	"github.com/dotworks/PixieBot_Go/internal/ledger"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/lootbox"
	"github.com/dotworks/PixieBot_Go/internal/metrics"
	"github.com/dotworks/PixieBot_Go/internal/pet"
)

// Services bundles everything the HTTP surface exposes.
type Services struct {
	Ledger  ledger.Service
	Catalog catalog.Service
	Gamble  gamble.Service
	Lootbox lootbox.Service
	Forge   forge.Service
	Enchant enchant.Service
	Pet     pet.Service
	Accrual accrual.Service
	Tracker *accrual.Tracker
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer wires the router, middleware stack and all routes.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services, eventBus event.Bus) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in the order defined, outermost first.
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/account", func(r chi.Router) {
			r.Get("/", handler.HandleGetAccount(svcs.Ledger))
			r.Get("/inventory", handler.HandleGetInventory(svcs.Ledger, svcs.Catalog))
		})

		r.Route("/store", func(r chi.Router) {
			r.Get("/", handler.HandleGetStore(svcs.Catalog))
			r.Post("/buy", handler.HandleBuyItem(svcs.Ledger, eventBus))
			r.Post("/sell", handler.HandleSellItem(svcs.Ledger, eventBus))
		})

		r.Post("/coins/give", handler.HandleGiveCoins(svcs.Ledger, eventBus))
		r.Post("/item/gift", handler.HandleGiftItem(svcs.Ledger, eventBus))

		r.Post("/gamble", handler.HandleGamble(svcs.Gamble, eventBus))
		r.Post("/lootbox/open", handler.HandleOpenBox(svcs.Lootbox, eventBus))

		r.Route("/forge", func(r chi.Router) {
			r.Post("/start", handler.HandleStartCraft(svcs.Forge))
			r.Post("/collect", handler.HandleCollectCraft(svcs.Forge, eventBus))
			r.Get("/status", handler.HandleCraftStatus(svcs.Forge))
			r.Get("/recipes", handler.HandleGetRecipes(svcs.Forge))
		})

		r.Route("/enchant", func(r chi.Router) {
			r.Post("/", handler.HandleEnchant(svcs.Enchant, eventBus))
			r.Get("/list", handler.HandleGetEnchantments(svcs.Enchant))
		})

		r.Route("/pet", func(r chi.Router) {
			r.Get("/list", handler.HandleListPets(svcs.Pet))
			r.Get("/active", handler.HandleGetActivePet(svcs.Pet))
			r.Post("/activate", handler.HandleSetActivePet(svcs.Pet))
			r.Post("/feed", handler.HandleFeedPet(svcs.Pet))
			r.Post("/box/open", handler.HandleOpenPetBox(svcs.Pet, eventBus))
			r.Post("/rename", handler.HandleRenamePet(svcs.Pet))
			r.Post("/remove", handler.HandleRemovePet(svcs.Pet))
		})

		r.Route("/accrual", func(r chi.Router) {
			r.Post("/chat", handler.HandleChatMessage(svcs.Accrual, eventBus))
			r.Post("/voice/start", handler.HandleVoiceStart(svcs.Tracker))
			r.Post("/voice/update", handler.HandleVoiceUpdate(svcs.Tracker))
			r.Post("/voice/stop", handler.HandleVoiceStop(svcs.Tracker))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/currency/adjust", handler.HandleAdjustCurrency(svcs.Ledger))
			r.Post("/pet/grant", handler.HandleGrantPet(svcs.Pet, eventBus))
			r.Post("/item", handler.HandleCreateItem(svcs.Catalog))
			r.Put("/item", handler.HandleUpdateItem(svcs.Catalog))
			r.Delete("/item", handler.HandleDeleteItem(svcs.Catalog))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes would drown the log.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Credentials never reach the log.
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
