package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// locationsCmd lists the account's locations with their cameras, so the
// user can find the index to pass to the events and videos commands.
var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List locations and their cameras",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		locations, err := api.GetLocations()
		if err != nil {
			fmt.Printf("Error fetching locations: %v\n", err)
			os.Exit(1)
		}

		// --- JSON OUTPUT ---
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(locations); err != nil {
				fmt.Printf("Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		// -------------------

		if len(locations) == 0 {
			fmt.Println("No locations found. Ensure your Ring account is configured correctly.")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "INDEX\tLOCATION\tCAMERA\tKIND\tBATTERY")
		fmt.Fprintln(w, "-----\t--------\t------\t----\t-------")

		for i, loc := range locations {
			if len(loc.Cameras) == 0 {
				fmt.Fprintf(w, "%d\t%s\t(no cameras)\t\t\n", i, loc.Name)
				continue
			}
			for _, cam := range loc.Cameras {
				battery := string(cam.BatteryLife)
				if battery == "" {
					battery = "n/a"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, loc.Name, cam.Description, cam.Kind, battery)
			}
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
