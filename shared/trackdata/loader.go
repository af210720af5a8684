package trackdata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/log"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Loader resolves track names against a track directory. It takes an fs.FS so
// callers can pass os.DirFS or an embed.FS.
type Loader struct {
	FS           fs.FS  // Track directory
	Builtin      fs.FS  // Consulted when even the default track is missing from FS; may be nil
	DefaultTrack string // Substituted for missing tracks
	MinPoints    int
	Epsilon      float64
}

// NewLoader returns a loader over fsys using the configured defaults.
func NewLoader(fsys, builtin fs.FS) *Loader {
	return &Loader{
		FS:           fsys,
		Builtin:      builtin,
		DefaultTrack: config.Track.DefaultTrack,
		MinPoints:    config.Track.MinPoints,
		Epsilon:      config.Track.ColinearEpsilon,
	}
}

// Load reads the named track, closes the loop and removes colinear points.
// A missing track is not an error: the default track is loaded instead and
// the result is marked as a fallback.
func (l *Loader) Load(name string) (*TrackData, error) {
	file := trackFileName(name)

	fsys, file, fallback, err := l.resolve(file)
	if err != nil {
		return nil, err
	}
	if fallback {
		log.Logger.Warn("Racetrack not found, using default track",
			zap.String("track", name),
			zap.String("default", file))
	}

	var points []mgl64.Vec3
	if strings.EqualFold(path.Ext(file), ".tmx") {
		points, err = LoadTMX(fsys, file)
	} else {
		points, err = readTrackFile(fsys, file)
	}
	if err != nil {
		return nil, err
	}

	points, err = l.Clean(points, file)
	if err != nil {
		return nil, err
	}

	return &TrackData{
		Name:     name,
		File:     file,
		Fallback: fallback,
		Points:   points,
	}, nil
}

// Clean drops the closing duplicate, reduces colinear points and checks that
// enough points remain to build a track.
func (l *Loader) Clean(points []mgl64.Vec3, file string) ([]mgl64.Vec3, error) {
	points = CloseLoop(points)
	points = ReduceColinear(points, l.Epsilon)

	if len(points) < l.MinPoints {
		return nil, fmt.Errorf("%s: %w (%d left, need %d)", file, ErrNotEnoughPoints, len(points), l.MinPoints)
	}
	return points, nil
}

// resolve picks the file system and file to read, falling back to the default
// track when the requested one does not exist.
func (l *Loader) resolve(file string) (fs.FS, string, bool, error) {
	if exists(l.FS, file) {
		return l.FS, file, false, nil
	}

	def := trackFileName(l.DefaultTrack)
	if exists(l.FS, def) {
		return l.FS, def, true, nil
	}
	if l.Builtin != nil && exists(l.Builtin, def) {
		return l.Builtin, def, true, nil
	}

	return nil, "", false, fmt.Errorf("racetrack %s not found and default %s unavailable: %w", file, def, fs.ErrNotExist)
}

func readTrackFile(fsys fs.FS, file string) ([]mgl64.Vec3, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open track %s: %w", file, err)
	}
	defer f.Close()

	return ParsePoints(f, file)
}

func exists(fsys fs.FS, file string) bool {
	if fsys == nil {
		return false
	}
	_, err := fs.Stat(fsys, file)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// trackFileName appends the default extension to bare track names.
func trackFileName(name string) string {
	if path.Ext(name) == "" {
		return name + config.Track.Extension
	}
	return name
}
