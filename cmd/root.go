package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/streambinder/spotilink/util/anchor"
)

var (
	cmdRoot = &cobra.Command{
		Use:   "spotilink",
		Short: "Reconcile a local music library against Spotify",
	}
	tui = anchor.New(anchor.Red)
)

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := cmdRoot.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		cancel()
		os.Exit(1)
	}
}

// musicDir returns the library path given as argument,
// falling back to the user music directory
func musicDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return xdg.UserDirs.Music
}
