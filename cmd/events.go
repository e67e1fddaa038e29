package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkureth/ring-video-downloader/internal/pipeline"
)

var eventsDataDir string

var eventsCmd = &cobra.Command{
	Use:   "events [locationIndex] [date]",
	Short: "Fetch the full event history and save it as JSON",
	Long: `Walks the paginated event history of one location, optionally keeps
only the events of a single UTC calendar day, and replaces
<data-dir>/events.json with the result.`,
	Example: `  ring-video-downloader events
  ring-video-downloader events 1
  ring-video-downloader events 0 2024-05-01`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index, day := parseRunArgs(args)

		api := setupClient()

		driver := pipeline.NewDriver(pipeline.Config{
			Service:       api,
			DataDir:       eventsDataDir,
			LocationIndex: index,
			Date:          day,
		})

		count, err := driver.RunEvents()
		if err != nil {
			var cfgErr *pipeline.ConfigError
			if errors.As(err, &cfgErr) {
				fmt.Printf("Error: %v\n", cfgErr)
			} else {
				fmt.Printf("Error fetching events: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("%d event(s) saved to %s\n", count, driver.EventsFilePath())
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventsDataDir, "out", "assets/data", "Directory for events.json")
}
