package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkureth/ring-video-downloader/internal/client"
	"github.com/mkureth/ring-video-downloader/internal/config"
	"github.com/mkureth/ring-video-downloader/pkg/models"
)

// Variables to hold flag values
var (
	expToken      string
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	api    *client.RingClient
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	log.Println("Attempting initial token refresh...")
	rotated, err := p.api.Authenticate()
	if err != nil {
		log.Printf("Fatal: Initial token refresh failed: %v", err)
		// Exit so the service manager attempts a restart.
		os.Exit(1)
	}
	if err := config.SaveRefreshToken(rotated); err != nil {
		log.Printf("Warning: could not persist rotated refresh token: %v", err)
	}
	log.Println("Initial token refresh successful.")

	registry := prometheus.NewRegistry()
	collector := &RingCollector{Client: p.api}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Ring Exporter listening on %s", addr)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP Server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping service...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR ---

type RingCollector struct {
	Client *client.RingClient
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"ring_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"ring_scrape_duration_seconds", "Time taken to scrape API.", nil, nil,
	)
	locationCountDesc = prometheus.NewDesc(
		"ring_locations_total", "Number of locations on the account.", nil, nil,
	)
	cameraCountDesc = prometheus.NewDesc(
		"ring_cameras_total", "Total cameras grouped by kind.", []string{"kind"}, nil,
	)
	cameraBatteryDesc = prometheus.NewDesc(
		"ring_camera_battery_percent", "Battery charge per camera.", []string{"location", "description"}, nil,
	)
)

func (c *RingCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- locationCountDesc
	ch <- cameraCountDesc
	ch <- cameraBatteryDesc
}

func (c *RingCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	if locations, err := c.fetchLocationsWithRetry(); err == nil {
		ch <- prometheus.MustNewConstMetric(locationCountDesc, prometheus.GaugeValue, float64(len(locations)))

		kindCounts := make(map[string]float64)
		for _, loc := range locations {
			for _, cam := range loc.Cameras {
				kind := strings.ToUpper(cam.Kind)
				if kind == "" {
					kind = "UNKNOWN"
				}
				kindCounts[kind]++

				if battery, err := cam.BatteryLife.Float64(); err == nil {
					ch <- prometheus.MustNewConstMetric(cameraBatteryDesc, prometheus.GaugeValue, battery, loc.Name, cam.Description)
				}
			}
		}
		for kind, cnt := range kindCounts {
			ch <- prometheus.MustNewConstMetric(cameraCountDesc, prometheus.GaugeValue, cnt, kind)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping locations: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- RETRY HELPER ---

// Bearer tokens expire between scrapes; refresh once and retry.
func (c *RingCollector) fetchLocationsWithRetry() ([]models.Location, error) {
	res, err := c.Client.GetLocations()
	if err == nil {
		return res, nil
	}
	if isAuthError(err) {
		if _, e := c.Client.Authenticate(); e == nil {
			return c.Client.GetLocations()
		}
	}
	return nil, err
}

func isAuthError(err error) bool {
	return strings.Contains(err.Error(), "401") || strings.Contains(err.Error(), "403")
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start Prometheus Exporter service",
	Long: `Starts a long-running HTTP server that exposes Ring fleet metrics.
Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		hardwareID, err := config.HardwareID()
		if err != nil {
			log.Fatalf("Failed to prepare hardware id: %v", err)
		}

		token := expToken
		if token == "" {
			token = viper.GetString("refresh_token")
		}
		if token == "" {
			log.Fatal("Error: No refresh token provided; pass --token or run 'ring-video-downloader login'.")
		}

		cfg := client.ClientConfig{
			APIBaseURL:   viper.GetString("api_base_url"),
			OAuthURL:     viper.GetString("oauth_url"),
			RefreshToken: token,
			HardwareID:   hardwareID,
		}

		svcConfig := &service.Config{
			Name:        "ring-exporter",
			DisplayName: "Ring Prometheus Exporter",
			Description: "Exposes Ring camera fleet metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--token", expToken,
				"--port", expPort,
			},
		}

		prg := &program{
			api: client.New(cfg),
		}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		if serviceAction != "" {
			if serviceAction == "install" && expToken == "" {
				log.Fatal("Error: You must provide --token to install the service.")
			}

			err = service.Control(s, serviceAction)
			if err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Run the Service (Blocking)
		logger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			logger.Error(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)

	exporterCmd.Flags().StringVar(&expToken, "token", "", "Ring refresh token (falls back to the stored one)")
	exporterCmd.Flags().StringVar(&expPort, "port", "9100", "Port to listen on")

	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
