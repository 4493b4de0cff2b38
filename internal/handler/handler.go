package handler // handler defines the HTTP handlers of the inventory site

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/queue"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/repository"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/service"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/utils"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/validator"
	"github.com/chrisbuild124/Full-Stack-SQL-Database-System/internal/view"
)

// Generic message shown for any failed listing page.
const msgQueryFailed = "An error occurred while executing the database query."

const publishTimeout = 3 * time.Second

// Resetter drops and recreates the schema.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// InventoryHandler bundles the repositories and collaborators every page and
// form handler needs.
type InventoryHandler struct {
	Repos       *repository.Repos
	Resetter    Resetter
	DB          Pinger
	Publisher   service.Publisher
	Logger      *slog.Logger
	ResetSecret string        // empty disables reset tokens
	ResetTTL    time.Duration // lifetime of a reset token
}

// Options configures NewInventoryHandler.
type Options struct {
	ResetSecret string
	ResetTTL    time.Duration
}

// NewInventoryHandler constructs the handler and panics if a required
// dependency is nil.  A nil publisher discards events.
func NewInventoryHandler(repos *repository.Repos, resetter Resetter, db Pinger, pub service.Publisher, logger *slog.Logger, opts Options) *InventoryHandler {
	if repos == nil || resetter == nil || db == nil || logger == nil {
		panic("nil dependency passed to NewInventoryHandler")
	}
	if pub == nil {
		pub = service.Noop{}
	}
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = 10 * time.Minute
	}
	return &InventoryHandler{
		Repos:       repos,
		Resetter:    resetter,
		DB:          db,
		Publisher:   pub,
		Logger:      logger,
		ResetSecret: opts.ResetSecret,
		ResetTTL:    opts.ResetTTL,
	}
}

// render wraps data in the page context shared by the layout.  The page is
// rendered into a buffer so that a template failure still gets the plain
// generic 500.
func (h *InventoryHandler) render(c echo.Context, name, title string, data map[string]any) error {
	page := view.Page{Title: title, Data: data}
	if h.ResetSecret != "" {
		tok, err := utils.NewResetToken(h.ResetSecret, h.ResetTTL, time.Now())
		if err != nil {
			h.Logger.Error("sign reset token", "err", err)
		}
		page.ResetToken = tok
	}
	r := c.Echo().Renderer
	if r == nil {
		return h.fail(c, "render."+name, msgQueryFailed, errors.New("no renderer registered"))
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, name, page, c); err != nil {
		return h.fail(c, "render."+name, msgQueryFailed, err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// fail logs the full error and answers with a generic 500.
func (h *InventoryHandler) fail(c echo.Context, op, msg string, err error) error {
	kind := repository.Kind(err)
	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		kind = "validation"
	}
	h.Logger.Error("request failed",
		"op", op,
		"kind", kind,
		"err", err,
		"request_id", requestID(c),
	)
	return c.String(http.StatusInternalServerError, msg)
}

// done publishes the change event and redirects to the listing page.  The
// event is best effort; its failure is logged and does not alter the response.
func (h *InventoryHandler) done(c echo.Context, entity, action, key, path string) error {
	ev := queue.NewInventoryChanged(entity, action, key, requestID(c))
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := h.Publisher.Publish(ctx, ev); err != nil {
		h.Logger.Warn("publish inventory event", "entity", entity, "action", action, "err", err)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// form decodes the urlencoded body.  A body that cannot be parsed behaves
// like an empty form, so each required field reports itself missing.
func form(c echo.Context) *validator.Form {
	values, err := c.FormParams()
	if err != nil {
		values = url.Values{}
	}
	return validator.NewForm(values)
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func idKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func pairKey(left string, l uint64, right string, r uint64) string {
	return left + "=" + idKey(l) + "," + right + "=" + idKey(r)
}
