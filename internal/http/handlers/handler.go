package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"jadwalkajian/backend/internal/broadcast"
	"jadwalkajian/backend/internal/broadcast/core"
	"jadwalkajian/backend/internal/config"
	"jadwalkajian/backend/internal/geo"
	authmw "jadwalkajian/backend/internal/http/middleware"
	"jadwalkajian/backend/internal/integrations"
	"jadwalkajian/backend/internal/preextract"
	"jadwalkajian/backend/internal/rate"
	"jadwalkajian/backend/internal/repository"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	repo         *repository.Repository
	s3           *integrations.S3Client
	classifier   *core.Classifier
	extractor    *geo.Extractor
	backfiller   *geo.Backfiller
	sanitizer    *preextract.Sanitizer
	cfg          *config.Config
	logger       *slog.Logger
	parseLimiter *rate.WindowLimiter
}

func New(repo *repository.Repository, s3 *integrations.S3Client, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	resolver := geo.NewHTTPResolver(logger, geo.ResolverConfig{
		Timeout:      cfg.Resolver.Timeout,
		RateLimitRPS: cfg.Resolver.RateLimitRPS,
	})
	extractor := geo.NewExtractor(resolver)
	return &Handler{
		repo:         repo,
		s3:           s3,
		classifier:   broadcast.NewClassifier(),
		extractor:    extractor,
		backfiller:   geo.NewBackfiller(repo, extractor, logger),
		sanitizer:    preextract.NewSanitizer(),
		cfg:          cfg,
		logger:       logger,
		parseLimiter: rate.NewWindowLimiter(30, time.Minute),
	}
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (h *Handler) loggerForRequest(r *http.Request) *slog.Logger {
	logger := h.logger
	if logger == nil {
		return slog.Default()
	}
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if username, ok := authmw.UsernameFromContext(r.Context()); ok {
		logger = logger.With("username", username)
	}
	return logger
}

func (h *Handler) requireAdmin(logger *slog.Logger, w http.ResponseWriter, r *http.Request, action string) bool {
	if !authmw.IsAdminFromContext(r.Context()) {
		logger.Warn("action", "action", action, "status", "forbidden")
		writeError(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}
