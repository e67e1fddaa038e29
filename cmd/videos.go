package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkureth/ring-video-downloader/internal/pipeline"
)

var (
	videosDataDir string
	videosOutDir  string
)

var videosCmd = &cobra.Command{
	Use:   "videos [locationIndex] [date]",
	Short: "Download the video clips for previously fetched events",
	Long: `Loads <data-dir>/events.json written by the events command, optionally
keeps only the events of a single UTC calendar day, and downloads one
MP4 per event into the output directory. Events without a recording id
and clips that fail to resolve or download are skipped, not fatal.`,
	Example: `  ring-video-downloader videos
  ring-video-downloader videos 0 2024-05-01 --out assets/videos`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		index, day := parseRunArgs(args)

		api := setupClient()

		driver := pipeline.NewDriver(pipeline.Config{
			Service:       api,
			DataDir:       videosDataDir,
			VideoDir:      videosOutDir,
			LocationIndex: index,
			Date:          day,
		})

		report, err := driver.RunVideos()
		if err != nil {
			var notFound *pipeline.NotFoundError
			if errors.As(err, &notFound) {
				fmt.Printf("Error: %v. Run the events command first.\n", notFound)
			} else {
				fmt.Printf("Error downloading videos: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("%d video(s) saved to %s (%d skipped, %d failed)\n",
			report.Saved, videosOutDir, report.Skipped, report.Failed)

		if report.Failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(videosCmd)

	videosCmd.Flags().StringVar(&videosDataDir, "data", "assets/data", "Directory containing events.json")
	videosCmd.Flags().StringVar(&videosOutDir, "out", "assets/videos", "Directory for downloaded clips")
}
