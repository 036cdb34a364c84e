package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/lair/internal/application/system"
)

// FrameIntent records one frame's resolved intent
type FrameIntent struct {
	F   int     `json:"f"`             // Frame number
	MX  float64 `json:"mx,omitempty"`  // MoveX
	MY  float64 `json:"my,omitempty"`  // MoveY
	Spr bool    `json:"spr,omitempty"` // Sprint
	Shd bool    `json:"shd,omitempty"` // Shield
}

// ReplayData contains all data needed to replay a round
type ReplayData struct {
	Version   string        `json:"version"`
	Seed      int64         `json:"seed"`
	Arena     string        `json:"arena"`
	StartTime string        `json:"startTime"`
	Frames    []FrameIntent `json:"frames"`
}

// Recorder handles intent recording
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder
func NewRecorder(seed int64, arena string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			Seed:      seed,
			Arena:     arena,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameIntent, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single frame's intent
func (r *Recorder) RecordFrame(in system.Intent) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameIntent{
		F:   r.frame,
		MX:  in.MoveX,
		MY:  in.MoveY,
		Spr: in.Sprint,
		Shd: in.Shield,
	})
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}

// Replayer handles intent playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetIntent returns the intent for the current frame and advances
func (r *Replayer) GetIntent() (system.Intent, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Intent{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.Intent{
		MoveX:  fi.MX,
		MoveY:  fi.MY,
		Sprint: fi.Spr,
		Shield: fi.Shd,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Seed:      12345,
		Arena:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameIntent, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameIntent{F: i}
	}

	return data
}
