package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkureth/ring-video-downloader/internal/client"
	"github.com/mkureth/ring-video-downloader/internal/config"
)

// Variables to hold flag values
var (
	loginToken string
	apiBaseURL string
	oauthURL   string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a Ring refresh token for future commands",
	Long: `Validates the given refresh token against the service and saves the
(possibly rotated) token to the local config file.

Obtain a refresh token with the ring-client-api auth CLI or from the
Ring developer tooling, then run:

  ring-video-downloader login --token "eyJhbGci..."`,
	Run: func(cmd *cobra.Command, args []string) {
		hardwareID, err := config.HardwareID()
		if err != nil {
			log.Fatalf("Failed to prepare hardware id: %v", err)
		}

		api := client.New(client.ClientConfig{
			APIBaseURL:   apiBaseURL,
			OAuthURL:     oauthURL,
			RefreshToken: loginToken,
			HardwareID:   hardwareID,
		})

		fmt.Println("Validating refresh token...")

		rotated, err := api.Authenticate()
		if err != nil {
			log.Fatalf("Fatal: Login failed: %v", err)
		}

		// Quick sanity call so a token for an empty account is caught now.
		locations, err := api.GetLocations()
		if err != nil {
			log.Fatalf("Fatal: Token accepted but listing locations failed: %v", err)
		}

		// Persist endpoints alongside the token so subsequent commands
		// talk to the same service.
		viper.Set("api_base_url", api.Config.APIBaseURL)
		viper.Set("oauth_url", api.Config.OAuthURL)

		if err := config.SaveRefreshToken(rotated); err != nil {
			log.Fatalf("Failed to save configuration file: %v", err)
		}

		fmt.Printf("Login successful. Found %d location(s). You can now run 'ring-video-downloader events'.\n", len(locations))
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginToken, "token", "", "Ring refresh token")
	loginCmd.Flags().StringVar(&apiBaseURL, "api-url", client.DefaultAPIBaseURL, "API Base URL")
	loginCmd.Flags().StringVar(&oauthURL, "oauth-url", client.DefaultOAuthURL, "OAuth token endpoint")

	_ = loginCmd.MarkFlagRequired("token")
}
