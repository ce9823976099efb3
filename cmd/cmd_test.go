package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/bogem/id3v2/v2"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/streambinder/spotilink/chart"
	"github.com/streambinder/spotilink/entity"
	"github.com/streambinder/spotilink/entity/id3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, path string, tags entity.Tags) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0xff}, 512), 0o644))
	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()
	require.NoError(t, tag.Write(tags))
}

func TestMusicDir(t *testing.T) {
	assert.Equal(t, "/music", musicDir([]string{"/music"}))
	assert.Equal(t, xdg.UserDirs.Music, musicDir(nil))
}

func TestRenderTable(t *testing.T) {
	output := renderTable([]string{"Name", "Count"}, [][]string{{"Band", "3"}, {"Other Band", "12"}}, text.AlignLeft, text.AlignRight)
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "COUNT")
	assert.Contains(t, output, "│ Band       │     3 │")
	assert.Contains(t, output, "│ Other Band │    12 │")
	assert.Contains(t, output, "╭")
	assert.Empty(t, renderTable(nil, [][]string{{"orphan"}}))
}

func TestPrintCharts(t *testing.T) {
	var (
		output bytes.Buffer
		songs  = []*entity.Song{
			{ID: "t1", CatalogArtist: "Band", Genres: []string{"rock"}},
			{ID: "t2", CatalogArtist: "Band", Genres: []string{"rock", "pop"}},
		}
	)
	printCharts(&output, chart.TopArtists(songs), chart.TopGenres(songs))
	assert.Contains(t, output.String(), "Top Artists")
	assert.Contains(t, output.String(), "Top Genres")
	assert.Contains(t, output.String(), "Band")
	assert.Contains(t, output.String(), "pop")
}

func TestScan(t *testing.T) {
	var (
		dir    = t.TempDir()
		output bytes.Buffer
		cmd    = cmdScan()
	)
	fixture(t, filepath.Join(dir, "song.mp3"), entity.Tags{Title: "Song", Artist: "Band", Album: "Rec"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("jpg"), 0o644))

	cmd.SetOut(&output)
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, output.String(), "Song")
	assert.Contains(t, output.String(), "Band")
	assert.Contains(t, output.String(), "Rec")
	assert.NotContains(t, output.String(), "cover")
	assert.True(t, strings.HasSuffix(output.String(), "1 files\n"))
}

func TestScanMissingDirectory(t *testing.T) {
	cmd := cmdScan()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, cmd.Execute())
}

func TestReconcileMissingEnvFile(t *testing.T) {
	cmd := cmdReconcile()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--env", filepath.Join(t.TempDir(), "missing.env"), t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env file")
}

func TestReconcileMissingConfig(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, nil, 0o644))
	for _, key := range []string{"CLIENT_ID", "CLIENT_SECRET", "REDIRECT_URI", "USERNAME", "PLAYLIST_NAME"} {
		t.Setenv(key, "")
	}

	cmd := cmdReconcile()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--env", env, t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLIENT_ID")
}

func TestReconcileInvalidRedirect(t *testing.T) {
	for key, value := range map[string]string{
		"CLIENT_ID":     "id",
		"CLIENT_SECRET": "secret",
		"REDIRECT_URI":  "callback",
		"USERNAME":      "user",
		"PLAYLIST_NAME": "Local",
	} {
		t.Setenv(key, value)
	}

	empty := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	cmd := cmdReconcile()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--env", empty, t.TempDir()})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing host")
}

func TestReconcileBareM3U(t *testing.T) {
	var (
		dir = t.TempDir()
		cmd = cmdReconcile()
	)
	require.NoError(t, cmd.ParseFlags([]string{"--m3u"}))
	cmd.PreRun(cmd, []string{dir})
	assert.Equal(t, dir, cmd.Flag("m3u").Value.String())
}
