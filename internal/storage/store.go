package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/san-kum/pixelviz/internal/export"
	"github.com/san-kum/pixelviz/internal/render"
)

const (
	metadataFile = "metadata.json"
	gifFile      = "frames.gif"
	apngFile     = "frames.apng.png"
	lastFile     = "last.png"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Recording struct {
	ID         string             `json:"id"`
	Rule       string             `json:"rule"`
	Params     map[string]float64 `json:"params"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Width      int                `json:"width"`
	Height     int                `json:"height"`
	IntervalMs int                `json:"interval_ms"`
	Variations int                `json:"variations"`
	Policy     string             `json:"channel_policy"`
	Frames     int                `json:"frames"`
	Scale      int                `json:"scale"`
	Files      []string           `json:"files"`
}

// Save writes the frames and their metadata into a new recording directory
// and returns its id.
func (s *Store) Save(meta Recording, frames []*render.Frame, scale int) (string, error) {
	if len(frames) == 0 {
		return "", errors.New("storage: nothing to save")
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if scale < 1 {
		scale = 1
	}
	runID := fmt.Sprintf("%s_%d", meta.Rule, meta.Timestamp.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrap(err, "create recording dir")
	}

	delay := meta.IntervalMs / 10
	if delay < 1 {
		delay = 1
	}
	if err := writeFile(filepath.Join(runDir, gifFile), func(f *os.File) error {
		return export.WriteGIF(f, frames, scale, delay)
	}); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(runDir, lastFile), func(f *os.File) error {
		return export.WritePNG(f, frames[len(frames)-1], scale)
	}); err != nil {
		return "", err
	}
	if err := export.SaveAPNG(filepath.Join(runDir, apngFile), frames, scale, delay); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Frames = len(frames)
	meta.Scale = scale
	meta.Files = []string{gifFile, apngFile, lastFile}

	if err := writeFile(filepath.Join(runDir, metadataFile), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	return runID, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", filepath.Base(path))
	}
	defer f.Close()
	return errors.Wrapf(write(f), "write %s", filepath.Base(path))
}

func (s *Store) Load(runID string) (*Recording, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, errors.Wrapf(err, "load recording %s", runID)
	}

	var meta Recording
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "parse recording %s", runID)
	}
	return &meta, nil
}

// Path returns the location of a file inside a recording.
func (s *Store) Path(runID, file string) string {
	return filepath.Join(s.baseDir, runID, file)
}

// List returns every readable recording, newest first.
func (s *Store) List() ([]Recording, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "list recordings")
	}

	var runs []Recording
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
