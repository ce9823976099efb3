package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/streambinder/spotilink/library"
	"github.com/streambinder/spotilink/util"
)

func init() {
	cmdRoot.AddCommand(cmdScan())
}

func cmdScan() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan [music_dir]",
		Short:        "Show the metadata extracted from the local library",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				dir        = musicDir(args)
				extensions = util.ErrWrap([]string{})(cmd.Flags().GetStringArray("extension"))
			)

			songs, err := library.Scan(dir,
				library.WithExtensions(extensions...),
				library.WithWindow(tui))
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(songs))
			for _, song := range songs {
				rows = append(rows, []string{song.Path, song.Filename, song.Title, song.Artist, song.Album})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Path", "Filename", "Title", "Artist", "Album"}, rows))
			fmt.Fprintf(cmd.OutOrStdout(), "%d files\n", len(songs))
			return nil
		},
	}
	cmd.Flags().StringArrayP("extension", "e", []string{}, "Accepted file extension (defaults to mp3)")
	return cmd
}
