package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(48000)

// drain reads s to exhaustion, returning the left channel
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			out = append(out, smp[0])
		}
		if !ok || n == 0 {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	s := NewOscillator(440, 10*time.Millisecond, WaveSine, testRate)
	out := drain(t, s)
	assert.Len(t, out, testRate.N(10*time.Millisecond))
	assert.Equal(t, 0.0, out[0])
}

func TestSquareWave(t *testing.T) {
	// 12 kHz at 48 kHz: two samples high, two low
	out := drain(t, NewOscillator(12000, time.Millisecond, WaveSquare, testRate))
	require.GreaterOrEqual(t, len(out), 4)
	assert.Equal(t, []float64{1, 1, -1, -1}, out[:4])
}

func TestNoiseBounded(t *testing.T) {
	for _, v := range drain(t, NewOscillator(0, 20*time.Millisecond, WaveNoise, testRate)) {
		assert.True(t, v >= -1 && v < 1)
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	sq := NewOscillator(12000, d, WaveSquare, testRate)

	out := drain(t, NewEnvelope(sq, d, 10*time.Millisecond, 50*time.Millisecond, testRate))
	require.Len(t, out, testRate.N(d))

	assert.Equal(t, 0.0, out[0], "attack starts silent")
	mid := testRate.N(30 * time.Millisecond)
	assert.InDelta(t, 1.0, math.Abs(out[mid]), 1e-12, "sustain at full level")
	assert.Less(t, math.Abs(out[len(out)-1]), 0.001, "release ends near silence")
}

func TestHitSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	out := drain(t, CreateHitSound(cfg))

	assert.InDelta(t, testRate.N(250*time.Millisecond), len(out), 512)
	assert.Equal(t, 0.0, out[0])
	for _, v := range out {
		require.False(t, math.IsNaN(v))
		require.LessOrEqual(t, math.Abs(v), 1.0)
	}
}

func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	for _, v := range drain(t, CreateHitSound(cfg)) {
		assert.Equal(t, 0.0, v)
	}
}
