package game

import (
	"bytes"
	"testing"
)

func TestAppendSample(t *testing.T) {
	tests := []struct {
		v    float64
		want []byte
	}{
		{0, []byte{0, 0, 0, 0}},
		{1, []byte{0xff, 0x7f, 0xff, 0x7f}},
		{2, []byte{0xff, 0x7f, 0xff, 0x7f}}, // clamped
		{-1, []byte{0x01, 0x80, 0x01, 0x80}},
	}
	for _, tt := range tests {
		if got := appendSample(nil, tt.v); !bytes.Equal(got, tt.want) {
			t.Errorf("appendSample(%v) = %x, want %x", tt.v, got, tt.want)
		}
	}
}

func TestSynthLengths(t *testing.T) {
	const rate = 1000
	notes := []float64{100, 200, 300}
	if got, want := len(synthNotes(rate, notes, 0.5, 0.1)), 3*500*4; got != want {
		t.Errorf("synthNotes length = %d, want %d", got, want)
	}
	if got, want := len(synthExplosion(rate)), 600*4; got != want {
		t.Errorf("synthExplosion length = %d, want %d", got, want)
	}
	if !bytes.Equal(synthExplosion(rate), synthExplosion(rate)) {
		t.Error("synthExplosion should be deterministic")
	}
	if len(synthMusic(rate)) == 0 || len(synthIntro(rate)) == 0 {
		t.Error("Generated tracks must not be empty")
	}
}

func TestTrackString(t *testing.T) {
	names := map[Track]string{TrackMusic: "music", TrackIntro: "intro", TrackExplosion: "explosion"}
	for track, want := range names {
		if track.String() != want {
			t.Errorf("Track(%d).String() = %q, want %q", int(track), track.String(), want)
		}
	}
}

func TestApplyMute(t *testing.T) {
	a := newFakeAudio()
	applyMute(a, true, 0.5)
	for track := Track(0); track < trackCount; track++ {
		if v, ok := a.volumes[track]; !ok || v != 0 {
			t.Errorf("%s volume = %v, want 0", track, v)
		}
	}

	applyMute(a, false, 0.3)
	if a.volumes[TrackMusic] != 0.3 || a.volumes[TrackIntro] != 1 || a.volumes[TrackExplosion] != 1 {
		t.Errorf("Unmuted volumes = %v", a.volumes)
	}
}

func TestSoundBoardIgnoresUnknownTrack(t *testing.T) {
	sb := &SoundBoard{}
	// no players loaded; every call must be a no-op
	sb.Play(TrackMusic)
	sb.Stop(Track(42))
	sb.SetVolume(Track(-1), 1)
}
