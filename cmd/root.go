package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wavecrossed/tubefy/spotify"
)

var (
	spotifyClient *spotify.Client
	cmdRoot       = &cobra.Command{
		Use:   "tubefy",
		Short: "Search YouTube for songs and reconcile results against Spotify metadata",
	}
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
