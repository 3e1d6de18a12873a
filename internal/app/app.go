package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/hoopscout/external/basketapi"
	"github.com/riskibarqy/hoopscout/internal/config"
	"github.com/riskibarqy/hoopscout/internal/infrastructure/imageinline"
	"github.com/riskibarqy/hoopscout/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoopscout/internal/interfaces/httpapi"
	"github.com/riskibarqy/hoopscout/internal/platform/cache"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
	"github.com/riskibarqy/hoopscout/internal/platform/resilience"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

// Services is the process-wide object graph. The upstream cache, the image
// cache and the annotation store are shared by every request.
type Services struct {
	Client      *basketapi.Client
	Teams       *usecase.TeamService
	Games       *usecase.GamesService
	Standings   *usecase.StandingsService
	Annotations *usecase.AnnotationService
	Reports     *usecase.ReportService
	Live        *usecase.LiveService
	Overlays    *usecase.OverlayService
}

func NewServices(cfg config.Config, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}
	directory := cfg.Teams
	if directory == nil {
		directory = config.DefaultRegistry()
	}

	client := basketapi.NewClient(basketapi.ClientConfig{
		SouthURL:        cfg.OriginSouthURL,
		NorthURL:        cfg.OriginNorthURL,
		CanonicalURL:    cfg.OriginCanonicalURL,
		APIKey:          cfg.APIKey,
		RatePerSecond:   cfg.UpstreamRatePerSecond,
		MetadataTimeout: cfg.MetadataTimeout,
		ListingTimeout:  cfg.ListingTimeout,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.CircuitEnabled,
			FailureThreshold: cfg.CircuitFailureCount,
			OpenTimeout:      cfg.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CircuitHalfOpenMaxReq,
		},
		Teams:  directory,
		Cache:  cache.NewStore(),
		Logger: logger,
	})
	images := imageinline.New(imageinline.Config{
		Fetcher:   client,
		Cache:     cache.NewStore(),
		Timeout:   cfg.ImageTimeout,
		MaxHeight: cfg.ImageMaxHeight,
		Quality:   cfg.ImageJPEGQuality,
		Logger:    logger,
	})
	store := memory.NewAnnotationRepository(logger)

	standings := usecase.NewStandingsService(client, cfg.SeasonID)
	live := usecase.NewLiveService(client, directory, logger)

	return &Services{
		Client:      client,
		Teams:       usecase.NewTeamService(client, client, directory, cfg.SeasonID),
		Games:       usecase.NewGamesService(client, directory),
		Standings:   standings,
		Annotations: usecase.NewAnnotationService(store, logger),
		Reports:     usecase.NewReportService(client, client, client, images, store, directory, cfg.SeasonID, logger),
		Live:        live,
		Overlays:    usecase.NewOverlayService(client, client, standings, live, client, images, directory, cfg.SeasonID, logger),
	}
}

// LoadAnnotations imports ANNOTATIONS_FILE when configured. A rejected file
// is fatal so a typo never starts the service with silently empty notes.
func (s *Services) LoadAnnotations(ctx context.Context, path string, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}
	result, err := s.Annotations.ImportFile(ctx, path)
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	if result.OK {
		logger.InfoContext(ctx, "annotations loaded", "path", path, "players", result.Players)
	}
	return nil
}

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if services == nil {
		return nil, fmt.Errorf("services cannot be nil")
	}

	handler := httpapi.NewHandler(
		services.Teams,
		services.Games,
		services.Standings,
		services.Annotations,
		services.Reports,
		services.Live,
		services.Overlays,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
