package decoder

import (
	"testing"
	"time"

	"github.com/simonhull/audiometa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertInfo_CoreAttributes(t *testing.T) {
	info := convertInfo(audiometa.AudioInfo{
		Duration:   90 * time.Second,
		Bitrate:    128000,
		SampleRate: 44100,
		Channels:   2,
		BitDepth:   16,
		VBR:        true,
		Codec:      "FLAC",
	})

	length, ok := info.Attr("length")
	require.True(t, ok)
	assert.Equal(t, 90.0, length.(FloatValue).Float())

	bitrate, ok := info.Attr("bitrate")
	require.True(t, ok)
	assert.Equal(t, int64(128000), bitrate.(IntValue).Int())

	depth, ok := info.Attr("bits_per_sample")
	require.True(t, ok)
	assert.Equal(t, int64(16), depth.(IntValue).Int())

	mode, ok := info.Attr("bitrate_mode")
	require.True(t, ok)
	assert.True(t, mode.(BoolValue).Bool())

	codec, ok := info.Attr("codec")
	require.True(t, ok)
	assert.Equal(t, "FLAC", codec.String())

	_, ok = info.Attr("codec_description")
	assert.False(t, ok, "empty codec description must stay absent")
	_, ok = info.Attr("track_gain")
	assert.False(t, ok, "replay gain absent when the library reports none")
}

func TestConvertInfo_ZeroBitDepthIsAbsent(t *testing.T) {
	info := convertInfo(audiometa.AudioInfo{SampleRate: 44100})
	_, ok := info.Attr("bits_per_sample")
	assert.False(t, ok)
}

func TestConvertInfo_ReplayGain(t *testing.T) {
	info := convertInfo(audiometa.AudioInfo{
		ReplayGain: &audiometa.ReplayGainInfo{
			TrackGain: -6.5,
			TrackPeak: 0.98,
			AlbumGain: -7.1,
			AlbumPeak: 1.01,
		},
	})

	for name, want := range map[string]float64{
		"track_gain": -6.5,
		"track_peak": 0.98,
		"album_gain": -7.1,
		"album_peak": 1.01,
	} {
		v, ok := info.Attr(name)
		require.True(t, ok, name)
		assert.Equal(t, want, v.(FloatValue).Float(), name)
	}
}

func TestInfo_NilReceiver(t *testing.T) {
	var info *Info
	_, ok := info.Attr("length")
	assert.False(t, ok)
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "hello", TextItem("hello").String())
	assert.Equal(t, "hi�", BytesItem([]byte{'h', 'i', 0xFF}).String())
	assert.Equal(t, "-3", IntItem(-3).String())
	assert.Equal(t, "2.5", FloatItem(2.5).String())
	assert.Equal(t, "false", BoolItem(false).String())
}
