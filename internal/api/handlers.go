package api

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"dataproc/internal/engine"
	"dataproc/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handler serves the manifest statistics and record summary computed at
// startup, plus on-demand analysis of uploaded data.
type Handler struct {
	mu       sync.RWMutex
	stats    *models.Statistics
	statsErr error
	summary  *models.RecordSummary

	validate *validator.Validate
}

func NewHandler(stats *models.Statistics) *Handler {
	return &Handler{stats: stats, validate: validator.New()}
}

// SetStats publishes the background manifest analysis result.
func (h *Handler) SetStats(stats *models.Statistics, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats, h.statsErr = stats, err
}

func (h *Handler) SetSummary(summary *models.RecordSummary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.summary = summary
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/manifest/stats", h.GetManifestStats)
	api.GET("/manifest/schema", h.GetManifestSchema)
	api.POST("/manifest/analyze", h.AnalyzeManifest)
	api.POST("/records/mean", h.ComputeMean)
	api.GET("/records/summary", h.GetRecordSummary)
}

// NewRouter builds an echo instance with the service middleware and routes.
func NewRouter(h *Handler, logger *slog.Logger, bodyLimit string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.BodyLimit(bodyLimit))

	h.RegisterRoutes(e)
	return e
}

// --- HANDLERS ---

func (h *Handler) GetManifestStats(c echo.Context) error {
	h.mu.RLock()
	stats, err := h.stats, h.statsErr
	h.mu.RUnlock()

	if err != nil {
		apiErr := fromLoadError(err)
		return c.JSON(apiErr.StatusCode, apiErr)
	}
	if stats == nil {
		return c.JSON(errNotReady.StatusCode, errNotReady)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetManifestSchema(c echo.Context) error {
	columns := make([]models.ColumnInfo, len(engine.PassengerSchema.Columns))
	for i, col := range engine.PassengerSchema.Columns {
		columns[i] = models.ColumnInfo{Name: col.Name, Kind: col.Kind.String(), Optional: col.Optional}
	}
	return c.JSON(http.StatusOK, columns)
}

// AnalyzeManifest runs the analyzer over the raw CSV request body.
func (h *Handler) AnalyzeManifest(c echo.Context) error {
	body := c.Request().Body
	stats, err := engine.AnalyzeSource(func() (io.ReadCloser, error) { return body, nil })
	if err != nil {
		apiErr := fromAnalyzeError(err)
		return c.JSON(apiErr.StatusCode, apiErr)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ComputeMean(c echo.Context) error {
	var req models.MeanRequest
	if err := c.Bind(&req); err != nil {
		apiErr := newAPIError(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", err.Error())
		return c.JSON(apiErr.StatusCode, apiErr)
	}
	if err := h.validate.Struct(&req); err != nil {
		apiErr := newAPIError(http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", err.Error())
		return c.JSON(apiErr.StatusCode, apiErr)
	}

	return c.JSON(http.StatusOK, models.MeanResult{
		Count: len(req.Records),
		Mean:  engine.Mean(req.Records),
	})
}

func (h *Handler) GetRecordSummary(c echo.Context) error {
	h.mu.RLock()
	summary := h.summary
	h.mu.RUnlock()

	if summary == nil {
		return c.JSON(errNotReady.StatusCode, errNotReady)
	}
	return c.JSON(http.StatusOK, summary)
}
