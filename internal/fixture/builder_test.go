package fixture

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/goldenfix/internal/decoder"
	"github.com/listenupapp/goldenfix/internal/format"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestBuilder_DecodeError(t *testing.T) {
	dec := decoder.Func(func(_ context.Context, _ string) (*decoder.File, error) {
		return nil, errors.New("bad magic bytes")
	})
	b := NewBuilder(dec, "/corpus", discardLogger())

	c := b.Build(context.Background(), "corrupt.mp3", []string{"test_mp3.py"})

	require.NotNil(t, c.ExpectedError)
	assert.Equal(t, ErrorInvalidHeader, c.ExpectedError.Code)
	assert.Equal(t, "bad magic bytes", c.ExpectedError.Message)

	// Error exclusivity: everything else stays at its empty defaults.
	assert.Empty(t, c.ExpectedTags)
	assert.Empty(t, c.ExpectedExtensions)
	assert.Nil(t, c.ExpectedCoreInfo.Length)
	assert.Nil(t, c.ExpectedCoreInfo.Bitrate)
	assert.Nil(t, c.ExpectedCoreInfo.SampleRate)
	assert.Nil(t, c.ExpectedCoreInfo.Channels)
	assert.Nil(t, c.ExpectedCoreInfo.BitsPerSample)

	assert.Equal(t, "corrupt", c.CaseID)
	assert.Equal(t, "corrupt.mp3", c.InputFile)
	assert.Equal(t, format.ID("mp3"), c.ExpectedFormat)
}

func TestBuilder_NoResult(t *testing.T) {
	dec := decoder.Func(func(_ context.Context, _ string) (*decoder.File, error) {
		return nil, nil
	})
	b := NewBuilder(dec, "/corpus", discardLogger())

	c := b.Build(context.Background(), "mystery.xyz", nil)

	require.NotNil(t, c.ExpectedError)
	assert.Equal(t, ErrorUnsupportedFormat, c.ExpectedError.Code)
	assert.Equal(t, "no result", c.ExpectedError.Message)
	assert.Equal(t, format.Unknown, c.ExpectedFormat)
	assert.Equal(t, []string{}, c.SourceReferences)
}

func TestBuilder_Success(t *testing.T) {
	var decodedPath string
	dec := decoder.Func(func(_ context.Context, path string) (*decoder.File, error) {
		decodedPath = path
		info := decoder.NewInfo().
			Set("length", decoder.Float(3.06)).
			Set("bitrate", decoder.Int(128000)).
			Set("sample_rate", decoder.Int(44100)).
			Set("channels", decoder.Int(2)).
			Set("bitrate_mode", decoder.Bool(true))
		return &decoder.File{
			Tags: []decoder.Tag{
				{Key: "TPE1", Value: decoder.TextList("Artist A", "Artist B")},
			},
			Info: info,
		}, nil
	})
	b := NewBuilder(dec, "/corpus", discardLogger())

	c := b.Build(context.Background(), "silence-44-s.mp3", []string{"test_id3.py", "test_mp3.py", "test_mp3.py"})

	assert.Equal(t, "/corpus/silence-44-s.mp3", decodedPath)
	assert.Nil(t, c.ExpectedError)

	require.NotNil(t, c.ExpectedCoreInfo.Length)
	assert.InDelta(t, 3.06, *c.ExpectedCoreInfo.Length, 1e-9)
	require.NotNil(t, c.ExpectedCoreInfo.Bitrate)
	assert.Equal(t, float64(128000), *c.ExpectedCoreInfo.Bitrate)
	require.NotNil(t, c.ExpectedCoreInfo.SampleRate)
	assert.Equal(t, float64(44100), *c.ExpectedCoreInfo.SampleRate)
	require.NotNil(t, c.ExpectedCoreInfo.Channels)
	assert.Equal(t, float64(2), *c.ExpectedCoreInfo.Channels)
	// Absent attribute stays nil, never zero.
	assert.Nil(t, c.ExpectedCoreInfo.BitsPerSample)

	assert.Contains(t, c.ExpectedTags, "TPE1")
	assert.Equal(t, []string{"Artist A", "Artist B"}, c.ExpectedTags["TPE1"].Text)
	// bitrate_mode flows through extensions, folded to int.
	assert.Equal(t, int64(1), c.ExpectedExtensions["bitrate_mode"].Int)

	// Provenance refs are deduplicated and sorted.
	assert.Equal(t, []string{"test_id3.py", "test_mp3.py"}, c.SourceReferences)
}

func TestBuilder_CoreNumberLeniency(t *testing.T) {
	dec := decoder.Func(func(_ context.Context, _ string) (*decoder.File, error) {
		info := decoder.NewInfo().
			Set("length", decoder.Text("12.5")).
			Set("bitrate", decoder.Text("not a number")).
			Set("sample_rate", decoder.Float(math.NaN())).
			Set("channels", decoder.Bool(true))
		return &decoder.File{Info: info}, nil
	})
	b := NewBuilder(dec, "/corpus", discardLogger())

	c := b.Build(context.Background(), "odd.flac", nil)

	require.NotNil(t, c.ExpectedCoreInfo.Length)
	assert.Equal(t, 12.5, *c.ExpectedCoreInfo.Length)
	assert.Nil(t, c.ExpectedCoreInfo.Bitrate)
	assert.Nil(t, c.ExpectedCoreInfo.SampleRate)
	assert.Nil(t, c.ExpectedCoreInfo.Channels)
}

func TestBuilder_NoInfoObject(t *testing.T) {
	dec := decoder.Func(func(_ context.Context, _ string) (*decoder.File, error) {
		return &decoder.File{Tags: []decoder.Tag{}}, nil
	})
	b := NewBuilder(dec, "/corpus", discardLogger())

	c := b.Build(context.Background(), "bare.ogg", nil)

	assert.Nil(t, c.ExpectedError)
	assert.Nil(t, c.ExpectedCoreInfo.Length)
	assert.Empty(t, c.ExpectedExtensions)
}
