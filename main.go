package main

import "github.com/mkureth/ring-video-downloader/cmd"

func main() {
	cmd.Execute()
}
