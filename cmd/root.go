package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkureth/ring-video-downloader/internal/client"
	"github.com/mkureth/ring-video-downloader/internal/config"
	"github.com/mkureth/ring-video-downloader/internal/pipeline"
)

var cfgFile string
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ring-video-downloader",
	Short: "Fetch event history and video clips from the Ring cloud service",
	Long: `Download motion/doorbell event metadata and the matching video clips
for one of your Ring locations. Events are saved as JSON, clips as MP4
files named after their timestamp and camera.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ring-video-downloader.yaml)")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
}

// Helper to build an authenticated client from the stored credentials.
// Persists the rotated refresh token before returning.
func setupClient() *client.RingClient {
	token := viper.GetString("refresh_token")
	if token == "" {
		fmt.Println("Error: No refresh token configured. Run 'ring-video-downloader login --token <token>' or set RING_REFRESH_TOKEN.")
		os.Exit(1)
	}

	hardwareID, err := config.HardwareID()
	if err != nil {
		fmt.Printf("Error preparing hardware id: %v\n", err)
		os.Exit(1)
	}

	api := client.New(client.ClientConfig{
		APIBaseURL:   viper.GetString("api_base_url"),
		OAuthURL:     viper.GetString("oauth_url"),
		RefreshToken: token,
		HardwareID:   hardwareID,
	})

	rotated, err := api.Authenticate()
	if err != nil {
		fmt.Printf("Error authenticating: %v\n", err)
		os.Exit(1)
	}

	// The service rotates refresh tokens on every exchange; losing the
	// new one means logging in again.
	if rotated != token {
		if err := config.SaveRefreshToken(rotated); err != nil {
			fmt.Printf("Warning: could not persist rotated refresh token: %v\n", err)
		}
	}

	return api
}

// parseRunArgs handles the shared positional arguments of the events
// and videos commands: an optional location index (default 0 when
// absent or non-numeric) and an optional YYYY-MM-DD day. A malformed
// day is a fatal usage error, not a silent no-match filter.
func parseRunArgs(args []string) (int, time.Time) {
	index := 0
	if len(args) >= 1 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			index = n
		}
	}

	var day time.Time
	if len(args) >= 2 {
		d, err := pipeline.ParseDay(args[1])
		if err != nil {
			fmt.Printf("Error: invalid date %q, expected YYYY-MM-DD\n", args[1])
			os.Exit(1)
		}
		day = d
	}

	return index, day
}
