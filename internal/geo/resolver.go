package geo

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"jadwalkajian/backend/internal/models"
)

const resolverUserAgent = "Mozilla/5.0 (compatible; JadwalKajianBot/1.0)"

// Link-shortener registrable domains that hide map coordinates behind a
// redirect.
var shortenerDomains = map[string]struct{}{
	"goo.gl":      {},
	"g.co":        {},
	"bit.ly":      {},
	"s.id":        {},
	"tinyurl.com": {},
}

// Resolver expands a possibly shortened map URL to its final form. Expansion
// is best-effort: implementations return the original URL on any failure.
type Resolver interface {
	Resolve(ctx context.Context, rawURL string) string
}

// ResolverConfig represents resolver config.
type ResolverConfig struct {
	Timeout      time.Duration
	RateLimitRPS float64
	RateBurst    int
}

// HTTPResolver follows redirects with a bounded timeout and a per-host token
// bucket, so batch backfills stay polite to the shortener endpoints.
type HTTPResolver struct {
	client  *http.Client
	logger  *slog.Logger
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     rate.Limit
	burst   int
}

// NewHTTPResolver creates h t t p resolver.
func NewHTTPResolver(logger *slog.Logger, cfg ResolverConfig) *HTTPResolver {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 2
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 2
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:        64,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     60 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &HTTPResolver{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger:  logger,
		buckets: make(map[string]*rate.Limiter),
		rps:     rate.Limit(cfg.RateLimitRPS),
		burst:   cfg.RateBurst,
	}
}

// Resolve expands shortened map links. Non-shortened URLs pass through
// untouched; any network failure degrades to the original URL.
func (r *HTTPResolver) Resolve(ctx context.Context, rawURL string) string {
	if r == nil || !IsShortenedMapURL(rawURL) {
		return rawURL
	}
	host := hostOf(rawURL)
	if err := r.limiterFor(host).Wait(ctx); err != nil {
		return rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return rawURL
	}
	req.Header.Set("User-Agent", resolverUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("url_expand_failed", "host", host, "error", err)
		return rawURL
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		r.logger.Warn("url_expand_failed", "host", host, "status", resp.StatusCode)
		return rawURL
	}
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return rawURL
}

// limiterFor handles internal limiter behavior.
func (r *HTTPResolver) limiterFor(host string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	limiter, ok := r.buckets[host]
	if !ok {
		limiter = rate.NewLimiter(r.rps, r.burst)
		r.buckets[host] = limiter
	}
	return limiter
}

// IsShortenedMapURL reports whether the URL host is a known link shortener.
func IsShortenedMapURL(rawURL string) bool {
	host := hostOf(rawURL)
	if host == "" {
		return false
	}
	eTLD1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		eTLD1 = host
	}
	_, ok := shortenerDomains[eTLD1]
	return ok
}

func hostOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u == nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// Extractor combines redirect expansion with the pattern cascade.
type Extractor struct {
	resolver Resolver
}

// NewExtractor creates extractor.
func NewExtractor(resolver Resolver) *Extractor {
	return &Extractor{resolver: resolver}
}

// ResolveAndExtract expands the URL if needed and extracts coordinates.
func (e *Extractor) ResolveAndExtract(ctx context.Context, rawURL string) (models.Coordinates, error) {
	resolved := rawURL
	if e != nil && e.resolver != nil {
		resolved = e.resolver.Resolve(ctx, rawURL)
	}
	return ExtractCoordinates(resolved)
}
