package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

// maxBodyBytes bounds annotation writes and imports.
const maxBodyBytes = 4 << 20

type Handler struct {
	teamService       *usecase.TeamService
	gamesService      *usecase.GamesService
	standingsService  *usecase.StandingsService
	annotationService *usecase.AnnotationService
	reportService     *usecase.ReportService
	liveService       *usecase.LiveService
	overlayService    *usecase.OverlayService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	gamesService *usecase.GamesService,
	standingsService *usecase.StandingsService,
	annotationService *usecase.AnnotationService,
	reportService *usecase.ReportService,
	liveService *usecase.LiveService,
	overlayService *usecase.OverlayService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		gamesService:      gamesService,
		standingsService:  standingsService,
		annotationService: annotationService,
		reportService:     reportService,
		liveService:       liveService,
		overlayService:    overlayService,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// queryInt64 reads an optional numeric parameter; absent means zero.
func queryInt64(values url.Values, key string) (int64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func pathInt64(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func queryFlag(values url.Values, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(values.Get(key)))
	return err == nil && v
}

func attachment(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
