package shortener

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sundayezeilo/linkshort/internal/errx"
	"github.com/sundayezeilo/linkshort/internal/httpx"
)

// HTTPShortenRequest represents the JSON request body for creating a link.
type HTTPShortenRequest struct {
	URL    string `json:"url"`
	Custom string `json:"custom,omitempty"`
}

// ShortenResponse represents the JSON response for a created link.
type ShortenResponse struct {
	Short    string `json:"short"`
	ShortURL string `json:"short_url,omitempty"`
}

// LinkSummary is one entry of the admin listing.
type LinkSummary struct {
	ID     int64  `json:"id"`
	Short  string `json:"short"`
	Target string `json:"target"`
	Clicks int64  `json:"clicks"`
}

// AssetServer serves static frontend files. Has reports whether a file with
// the given name exists.
type AssetServer interface {
	http.Handler
	Has(name string) bool
}

// Handler provides HTTP handlers for the URL shortener service.
type Handler struct {
	service     Service
	logger      *slog.Logger
	baseURL     string
	listDefault int
	assets      AssetServer
}

// HandlerConfig holds configuration for the handler.
type HandlerConfig struct {
	Service     Service
	Logger      *slog.Logger
	BaseURL     string      // used to build short_url; omitted from responses when empty
	ListDefault int         // limit used when /admin/list has no limit parameter
	Assets      AssetServer // optional static fallback for unknown codes
}

// NewHandler creates a new Handler instance.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	listDefault := cfg.ListDefault
	if listDefault <= 0 {
		listDefault = DefaultListLimit
	}

	return &Handler{
		service:     cfg.Service,
		logger:      logger,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		listDefault: listDefault,
		assets:      cfg.Assets,
	}
}

// Shorten handles POST /shorten.
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logger := h.logger.With(
		"request_id", httpx.GetRequestID(ctx),
		"method", r.Method,
		"path", r.URL.Path,
	)

	req, err := httpx.DecodeJSON[HTTPShortenRequest](w, r)
	if err != nil {
		logger.WarnContext(ctx, "failed to decode request", "error", err.Error())
		httpx.WriteKindError(w, err, err.Error())
		return
	}

	link, err := h.service.Create(ctx, CreateLinkRequest{
		TargetURL:  req.URL,
		CustomCode: req.Custom,
	})
	if err != nil {
		h.handleCreateError(ctx, w, err)
		return
	}

	logger.InfoContext(ctx, "link created",
		"link_id", link.ID,
		"short", link.Short,
		"custom", req.Custom != "",
	)

	httpx.WriteJSON(w, http.StatusOK, ShortenResponse{
		Short:    link.Short,
		ShortURL: h.shortURL(link.Short),
	})
}

// Redirect handles GET /{short}. Unknown codes that name a static asset are
// served from the asset server instead of failing.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	short := r.PathValue("short")

	target, err := h.service.Resolve(ctx, short)
	if err != nil {
		if errx.KindOf(err) == errx.NotFound && h.assets != nil && h.assets.Has(short) {
			h.assets.ServeHTTP(w, r)
			return
		}
		h.handleResolveError(ctx, w, err, short)
		return
	}

	h.logger.DebugContext(ctx, "link resolved",
		"request_id", httpx.GetRequestID(ctx),
		"short", short,
		"referer", r.Referer(),
	)

	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// List handles GET /admin/list?limit=N.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := httpx.QueryInt(r, "limit", h.listDefault)
	if err != nil {
		httpx.WriteKindError(w, err, err.Error())
		return
	}

	links, err := h.service.ListRecent(ctx, limit)
	if err != nil {
		h.handleListError(ctx, w, err)
		return
	}

	items := make([]LinkSummary, 0, len(links))
	for _, l := range links {
		items = append(items, LinkSummary{
			ID:     l.ID,
			Short:  l.Short,
			Target: l.Target,
			Clicks: l.Clicks,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) shortURL(short string) string {
	if h.baseURL == "" {
		return ""
	}
	return h.baseURL + "/" + short
}

func errorAttrs(err error, extra ...any) []any {
	return append([]any{
		"error", err.Error(),
		"error_kind", errx.KindOf(err),
		"operation", errx.OpOf(err),
	}, extra...)
}

func (h *Handler) handleCreateError(ctx context.Context, w http.ResponseWriter, err error) {
	logAttrs := errorAttrs(err, "request_id", httpx.GetRequestID(ctx))

	switch errx.KindOf(err) {
	case errx.Duplicate:
		h.logger.WarnContext(ctx, "custom code taken", logAttrs...)
		httpx.WriteKindError(w, err, "custom code already exists")

	case errx.Invalid:
		h.logger.WarnContext(ctx, "invalid link request", logAttrs...)
		httpx.WriteKindError(w, err, err.Error())

	default:
		h.logger.ErrorContext(ctx, "failed to create link", logAttrs...)
		httpx.WriteKindError(w, err, "unable to create short link at this time")
	}
}

func (h *Handler) handleResolveError(ctx context.Context, w http.ResponseWriter, err error, short string) {
	logAttrs := errorAttrs(err, "request_id", httpx.GetRequestID(ctx), "short", short)

	switch errx.KindOf(err) {
	case errx.NotFound:
		h.logger.DebugContext(ctx, "short code not found", logAttrs...)
		httpx.WriteKindError(w, err, "short link not found")

	default:
		h.logger.ErrorContext(ctx, "failed to resolve link", logAttrs...)
		httpx.WriteKindError(w, err, "unable to resolve this link at this time")
	}
}

func (h *Handler) handleListError(ctx context.Context, w http.ResponseWriter, err error) {
	logAttrs := errorAttrs(err, "request_id", httpx.GetRequestID(ctx))

	if errx.KindOf(err) == errx.Invalid {
		h.logger.WarnContext(ctx, "invalid list request", logAttrs...)
		httpx.WriteKindError(w, err, err.Error())
		return
	}

	h.logger.ErrorContext(ctx, "failed to list links", logAttrs...)
	httpx.WriteKindError(w, err, "unable to list links at this time")
}
