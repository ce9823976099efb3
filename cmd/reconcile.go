package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streambinder/spotilink/chart"
	"github.com/streambinder/spotilink/config"
	"github.com/streambinder/spotilink/pipeline"
	"github.com/streambinder/spotilink/spotify"
	"github.com/streambinder/spotilink/util"
)

// m3uLibrary is what a bare --m3u stands for:
// the local playlist gets saved within the library itself
const m3uLibrary = "<library>"

func init() {
	cmdRoot.AddCommand(cmdReconcile())
}

func cmdReconcile() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "reconcile [music_dir]",
		Short:        "Match the local library against Spotify and publish it as a playlist",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
				if f.Name == "m3u" && f.Value.String() == m3uLibrary {
					util.ErrSuppress(f.Value.Set(musicDir(args)))
				}
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				env        = util.ErrWrap("")(cmd.Flags().GetString("env"))
				charts     = util.ErrWrap(".")(cmd.Flags().GetString("charts"))
				m3u        = util.ErrWrap("")(cmd.Flags().GetString("m3u"))
				export     = util.ErrWrap("")(cmd.Flags().GetString("export"))
				extensions = util.ErrWrap([]string{})(cmd.Flags().GetStringArray("extension"))
			)

			var files []string
			if len(env) > 0 {
				files = append(files, env)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			cfg.Library = musicDir(args)
			cfg.ChartsDir = charts
			cfg.M3UDir = m3u
			cfg.Export = export
			if len(extensions) > 0 {
				cfg.Extensions = extensions
			}

			tui.Lot("auth").Printf("waiting for %s", cfg.RedirectURI)
			client, err := spotify.Authenticate(cmd.Context(), cfg, spotify.BrowserProcessor)
			if err != nil {
				return err
			}
			tui.Lot("auth").Close()

			result, err := pipeline.Run(cmd.Context(), cfg, client,
				pipeline.WithWindow(tui),
				pipeline.WithProgressBars())
			if result != nil {
				printCharts(cmd.OutOrStdout(), result.Charts...)
			}
			return err
		},
	}
	cmd.Flags().String("env", "", "Dotenv file to load configuration from (defaults to .env)")
	cmd.Flags().StringP("charts", "c", ".", "Directory to render charts into")
	cmd.Flags().String("m3u", "", "Directory to save a local M3U playlist into (library if no value is given)")
	cmd.Flags().Lookup("m3u").NoOptDefVal = m3uLibrary
	cmd.Flags().StringP("export", "x", "", "Path to export the JSON report to")
	cmd.Flags().StringArrayP("extension", "e", []string{}, "Accepted file extension (overrides EXTENSIONS)")
	return cmd
}

func printCharts(output io.Writer, charts ...chart.Chart) {
	for _, ranking := range charts {
		rows := make([][]string, 0, len(ranking.Entries))
		for index, entry := range ranking.Entries {
			rows = append(rows, []string{strconv.Itoa(index + 1), entry.Label, strconv.Itoa(entry.Count)})
		}
		fmt.Fprintln(output, ranking.Title)
		fmt.Fprintln(output, renderTable([]string{"#", ranking.YLabel, ranking.XLabel}, rows, text.AlignRight, text.AlignLeft, text.AlignRight))
	}
}
