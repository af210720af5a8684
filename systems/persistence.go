package systems

import (
	"encoding/json"
	"strings"

	"github.com/automoto/racetrack/log"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedTrack is the per-track state stored on disk.
type SavedTrack struct {
	Seed int64 `json:"seed"`
}

// ItemStore is the subset of *gdata.Manager the seed store uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var gdataManager ItemStore

// InitPersistence opens the gdata store used to remember powerup seeds.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	return nil
}

// SetItemStore replaces the backing store. Passing nil disables persistence.
func SetItemStore(s ItemStore) {
	gdataManager = s
}

func seedKey(track string) string {
	return "seed_" + strings.NewReplacer("/", "_", ".", "_").Replace(track)
}

// LoadSeed returns the seed last used for track. ok is false when persistence
// is off or nothing was saved yet.
func LoadSeed(track string) (seed int64, ok bool) {
	if gdataManager == nil {
		return 0, false
	}

	data, err := gdataManager.LoadItem(seedKey(track))
	if err != nil {
		log.Logger.Warn("could not load track seed", zap.String("track", track), zap.Error(err))
		return 0, false
	}
	if len(data) == 0 {
		return 0, false
	}

	var saved SavedTrack
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Logger.Warn("could not parse saved track", zap.String("track", track), zap.Error(err))
		return 0, false
	}

	return saved.Seed, true
}

// SaveSeed remembers seed for track.
func SaveSeed(track string, seed int64) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(SavedTrack{Seed: seed})
	if err != nil {
		return err
	}

	if err := gdataManager.SaveItem(seedKey(track), data); err != nil {
		log.Logger.Warn("could not save track seed", zap.String("track", track), zap.Error(err))
		return err
	}
	return nil
}
