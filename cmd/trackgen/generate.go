package main

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	cfg "github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/log"
	"github.com/automoto/racetrack/minimap"
	"github.com/automoto/racetrack/racetrack"
	"github.com/automoto/racetrack/systems"
)

type generateOptions struct {
	seed        int64
	minimapFile string
	minimapSize int
	persist     bool
}

func newGenerateCmd() *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [track]",
		Short: "build a racetrack and print what it is made of",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Track.DefaultTrack
			if len(args) == 1 {
				name = args[0]
			}
			return runGenerate(cmd.OutOrStdout(), name, o, cmd.Flags().Changed("seed"))
		},
	}

	cmd.Flags().Int64Var(&o.seed, "seed", 0,
		"powerup seed (default: the seed saved for the track, or a random one)")
	cmd.Flags().StringVar(&o.minimapFile, "minimap", "",
		"write a PNG overview of the track to this file")
	cmd.Flags().IntVar(&o.minimapSize, "minimap-size", cfg.Minimap.Size,
		"minimap edge length in pixels")
	cmd.Flags().BoolVar(&o.persist, "persist", false,
		"remember the powerup seed per track")

	return cmd
}

func runGenerate(out io.Writer, name string, o *generateOptions, seeded bool) error {
	if o.persist {
		if err := systems.InitPersistence("racetrack"); err != nil {
			return fmt.Errorf("open seed store: %w", err)
		}
	}

	opts := []racetrack.Option{racetrack.WithFS(os.DirFS(cfg.Track.Dir))}
	if seeded {
		opts = append(opts, racetrack.WithSeed(o.seed))
	}

	rt, err := racetrack.New(ecs.NewECS(donburi.NewWorld()), name, opts...)
	if err != nil {
		return err
	}
	defer rt.Destroy()

	s := rt.Summary()
	fmt.Fprintf(out, "track:       %s (%s)\n", s.Name, s.File)
	if s.Fallback {
		fmt.Fprintln(out, "             not found, default track used")
	}
	fmt.Fprintf(out, "seed:        %d\n", s.Seed)
	fmt.Fprintf(out, "waypoints:   %d\n", s.Points)
	fmt.Fprintf(out, "walls:       %d\n", s.Walls)
	fmt.Fprintf(out, "floors:      %d\n", s.Floors)
	fmt.Fprintf(out, "checkpoints: %d\n", s.Checkpoints)
	fmt.Fprintf(out, "powerups:    %d\n", s.Powerups)

	if o.minimapFile == "" {
		return nil
	}
	if err := writeMinimap(rt, o.minimapFile, o.minimapSize); err != nil {
		return err
	}
	log.Logger.Info("Minimap written", zap.String("file", o.minimapFile))
	return nil
}

func writeMinimap(rt *racetrack.Racetrack, file string, size int) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("write minimap: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, minimap.Render(rt.Track, size)); err != nil {
		return fmt.Errorf("write minimap %s: %w", file, err)
	}
	return nil
}
