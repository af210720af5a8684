package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/automoto/racetrack/assets"
	cfg "github.com/automoto/racetrack/config"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the tracks in the track directory and the built-in ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := listTracks(os.DirFS(cfg.Track.Dir))
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			builtin, err := listTracks(assets.TrackFS())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range local {
				fmt.Fprintln(out, name)
			}
			for _, name := range lo.Without(builtin, local...) {
				fmt.Fprintf(out, "%s (built-in)\n", name)
			}
			return nil
		},
	}
}

// listTracks returns the track names found at the top of fsys.
func listTracks(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}

	names := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != cfg.Track.Extension && !strings.EqualFold(ext, ".tmx")) {
			return "", false
		}
		return e.Name(), true
	})
	sort.Strings(names)
	return names, nil
}
