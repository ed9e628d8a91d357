//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog/log"
)

// MusicPlayer loops the round music and plays one-shot cues.
type MusicPlayer struct {
	dir     string
	track   string
	cues    []string
	buffers map[string]*beep.Buffer
	enabled bool

	mu   sync.Mutex
	ctrl *beep.Ctrl
}

// decoders by file extension, in lookup order
var decoders = []struct {
	ext    string
	decode func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
}{
	{".mp3", mp3.Decode},
	{".wav", func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(r) }},
}

// NewMusicPlayer plays <dir>/<track>.{mp3,wav} while the music is on and
// the named cues on demand.
func NewMusicPlayer(dir, track string, cues ...string) *MusicPlayer {
	return &MusicPlayer{
		dir:     dir,
		track:   track,
		cues:    cues,
		buffers: make(map[string]*beep.Buffer),
	}
}

func (mp *MusicPlayer) Init() error {
	sampleRate := beep.SampleRate(44100)
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	mp.enabled = true

	mp.loadSounds(sampleRate)
	return nil
}

// loadSounds buffers the track and every cue that has a file. A missing or
// undecodable sound just stays silent.
func (mp *MusicPlayer) loadSounds(sampleRate beep.SampleRate) {
	for _, name := range append([]string{mp.track}, mp.cues...) {
		buffer, err := mp.loadSound(name, sampleRate)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("sound", name).Msg("skipping sound")
		case buffer != nil:
			mp.buffers[name] = buffer
		}
	}
}

// loadSound decodes the first <name>.mp3 or <name>.wav found in dir. It
// returns nil, nil when neither exists.
func (mp *MusicPlayer) loadSound(name string, sampleRate beep.SampleRate) (*beep.Buffer, error) {
	for _, d := range decoders {
		f, err := os.Open(filepath.Clean(filepath.Join(mp.dir, name+d.ext)))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		streamer, format, err := d.decode(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("decode %s%s: %w", name, d.ext, err)
		}

		var resampled beep.Streamer = streamer
		if format.SampleRate != sampleRate {
			resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
		}
		buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
		buffer.Append(resampled)
		_ = streamer.Close()
		return buffer, nil
	}
	return nil, nil
}

// Start loops the music track from the beginning.
func (mp *MusicPlayer) Start() {
	if !mp.enabled {
		return
	}
	buffer, ok := mp.buffers[mp.track]
	if !ok {
		return
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.stopLocked()
	mp.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, buffer.Streamer(0, buffer.Len()))}
	speaker.Play(mp.ctrl)
}

// Stop silences the music track. Cues keep playing.
func (mp *MusicPlayer) Stop() {
	if !mp.enabled {
		return
	}
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.stopLocked()
}

func (mp *MusicPlayer) stopLocked() {
	if mp.ctrl == nil {
		return
	}
	speaker.Lock()
	mp.ctrl.Streamer = nil
	mp.ctrl.Paused = true
	speaker.Unlock()
	mp.ctrl = nil
}

// Play plays a one-shot cue by name
func (mp *MusicPlayer) Play(name string) {
	if !mp.enabled {
		return
	}

	buffer, ok := mp.buffers[name]
	if !ok {
		// Silent failure if sound not found
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (mp *MusicPlayer) Close() {
	mp.Stop()
	mp.enabled = false
}
