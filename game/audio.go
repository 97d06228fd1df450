package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the audio context rate used by the game
const SampleRate = 44100

// Track identifies one of the game's sounds
type Track int

const (
	TrackMusic     Track = iota // looping background track
	TrackIntro                  // menu jingle
	TrackExplosion              // one-shot
	trackCount
)

func (t Track) String() string {
	switch t {
	case TrackMusic:
		return "music"
	case TrackIntro:
		return "intro"
	case TrackExplosion:
		return "explosion"
	default:
		return fmt.Sprintf("track(%d)", int(t))
	}
}

// AudioPlayer plays the game's tracks. Gameplay never waits on it.
type AudioPlayer interface {
	Play(t Track)
	Stop(t Track)
	SetVolume(t Track, volume float64)
}

// NoopAudio discards every call
type NoopAudio struct{}

func (NoopAudio) Play(Track) {}
func (NoopAudio) Stop(Track) {}
func (NoopAudio) SetVolume(Track, float64) {}

// applyMute sets every track's volume for the mute state
func applyMute(a AudioPlayer, muted bool, musicVolume float64) {
	if muted {
		a.SetVolume(TrackMusic, 0)
		a.SetVolume(TrackIntro, 0)
		a.SetVolume(TrackExplosion, 0)
		return
	}
	a.SetVolume(TrackMusic, musicVolume)
	a.SetVolume(TrackIntro, 1)
	a.SetVolume(TrackExplosion, 1)
}

// SoundBoard plays tracks through an ebiten audio context
type SoundBoard struct {
	players [trackCount]*audio.Player
}

// NewSoundBoard loads each track from dir, falling back to a generated sound
// when the file is missing or cannot be decoded
func NewSoundBoard(ctx *audio.Context, dir string) (*SoundBoard, error) {
	sb := &SoundBoard{}
	for t := Track(0); t < trackCount; t++ {
		player, err := loadTrack(ctx, dir, t)
		if err != nil {
			log.Printf("[Audio] Warning: %v, using generated %s", err, t)
			player, err = synthTrack(ctx, t)
			if err != nil {
				return nil, fmt.Errorf("failed to create %s player: %w", t, err)
			}
		}
		sb.players[t] = player
	}
	return sb, nil
}

// Play restarts the track from the beginning
func (sb *SoundBoard) Play(t Track) {
	p := sb.player(t)
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("[Audio] Warning: failed to rewind %s: %v", t, err)
	}
	p.Play()
}

// Stop pauses the track
func (sb *SoundBoard) Stop(t Track) {
	if p := sb.player(t); p != nil {
		p.Pause()
	}
}

// SetVolume sets the track volume in [0, 1]
func (sb *SoundBoard) SetVolume(t Track, volume float64) {
	if p := sb.player(t); p != nil {
		p.SetVolume(volume)
	}
}

func (sb *SoundBoard) player(t Track) *audio.Player {
	if t < 0 || t >= trackCount {
		return nil
	}
	return sb.players[t]
}

// loadTrack looks for <track>.ogg, .mp3 or .wav in dir
func loadTrack(ctx *audio.Context, dir string, t Track) (*audio.Player, error) {
	for _, ext := range []string{".ogg", ".mp3", ".wav"} {
		path := filepath.Join(dir, t.String()+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		stream, err := decodeAudio(ctx, path, data)
		if err != nil {
			return nil, err
		}
		if t == TrackMusic {
			return ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
		}
		return ctx.NewPlayer(stream)
	}
	return nil, fmt.Errorf("no audio file for %s in %s", t, dir)
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

func decodeAudio(ctx *audio.Context, path string, data []byte) (decodedStream, error) {
	reader := bytes.NewReader(data)
	var (
		stream decodedStream
		err    error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return stream, nil
}

// synthTrack generates a placeholder for a missing file
func synthTrack(ctx *audio.Context, t Track) (*audio.Player, error) {
	rate := ctx.SampleRate()
	switch t {
	case TrackMusic:
		pcm := synthMusic(rate)
		return ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	case TrackIntro:
		return ctx.NewPlayerFromBytes(synthIntro(rate)), nil
	case TrackExplosion:
		return ctx.NewPlayerFromBytes(synthExplosion(rate)), nil
	default:
		return nil, fmt.Errorf("unknown track %d", int(t))
	}
}

// synthMusic renders a looping square-wave bass line
func synthMusic(rate int) []byte {
	notes := []float64{110, 110, 131, 147, 110, 110, 165, 147}
	return synthNotes(rate, notes, 0.25, 0.08)
}

// synthIntro renders a rising arpeggio
func synthIntro(rate int) []byte {
	notes := []float64{262, 330, 392, 523, 392, 523, 659, 784}
	return synthNotes(rate, notes, 0.15, 0.12)
}

func synthNotes(rate int, notes []float64, noteSeconds, amp float64) []byte {
	perNote := int(noteSeconds * float64(rate))
	buf := make([]byte, 0, len(notes)*perNote*4)
	for _, freq := range notes {
		for i := 0; i < perNote; i++ {
			phase := float64(i) * freq / float64(rate)
			v := amp
			if math.Mod(phase, 1) >= 0.5 {
				v = -amp
			}
			// short release to avoid clicks between notes
			if tail := perNote - i; tail < perNote/8 {
				v *= float64(tail) / float64(perNote/8)
			}
			buf = appendSample(buf, v)
		}
	}
	return buf
}

// synthExplosion renders decaying noise
func synthExplosion(rate int) []byte {
	n := rate * 6 / 10
	rng := rand.New(rand.NewSource(911))
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		decay := math.Exp(-5 * float64(i) / float64(n))
		buf = appendSample(buf, (rng.Float64()*2-1)*0.6*decay)
	}
	return buf
}

// appendSample writes one 16-bit little-endian stereo frame
func appendSample(buf []byte, v float64) []byte {
	s := int16(math.Max(-1, math.Min(1, v)) * 32767)
	return append(buf, byte(s), byte(s>>8), byte(s), byte(s>>8))
}
