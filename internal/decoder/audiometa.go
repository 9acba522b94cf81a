package decoder

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/simonhull/audiometa"
)

// AudiometaDecoder adapts the audiometa library to the Decoder
// interface. It is the production decoder for the generator.
type AudiometaDecoder struct {
	logger *slog.Logger
}

// NewAudiometaDecoder creates the adapter.
func NewAudiometaDecoder(logger *slog.Logger) *AudiometaDecoder {
	return &AudiometaDecoder{logger: logger}
}

// artworkKeys maps a container format to the native tag key its
// artwork lives under. Formats with no entry do not surface artwork
// through the tag container: ID3v2 APIC:desc keys, for example, never
// pass the tag collector's filter, so exposing them would only add
// dead entries.
var artworkKeys = map[audiometa.Format]string{
	audiometa.FormatM4A: "covr",
	audiometa.FormatM4B: "covr",
}

// Decode opens path with audiometa and rebuilds its result as the
// generic decoded-file graph. An UnsupportedFormatError becomes the
// no-result sentinel; any other open error propagates.
func (d *AudiometaDecoder) Decode(ctx context.Context, path string) (*File, error) {
	f, err := audiometa.OpenContext(ctx, path)
	if err != nil {
		var unsupported *audiometa.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	return &File{
		Tags: d.convertTags(f),
		Info: convertInfo(f.Audio),
	}, nil
}

// convertTags flattens the raw tag map into an ordered container.
// audiometa stores raw tags in a Go map, so keys are sorted to give
// the stable enumeration order the collector relies on.
func (d *AudiometaDecoder) convertTags(f *audiometa.File) []Tag {
	keys := make([]string, 0, 16)
	byKey := make(map[string][]string)
	for key, values := range f.Tags.All() {
		keys = append(keys, key)
		byKey[key] = values
	}
	sort.Strings(keys)

	tags := make([]Tag, 0, len(keys)+1)
	for _, key := range keys {
		tags = append(tags, Tag{Key: key, Value: TextList(byKey[key]...)})
	}

	if key, ok := artworkKeys[f.Format]; ok {
		if items := d.artworkItems(f); len(items) > 0 {
			tags = append(tags, Tag{Key: key, Value: List(items...)})
		}
	}

	return tags
}

// artworkItems loads embedded artwork lazily; extraction failures are
// logged and yield no items, never an error.
func (d *AudiometaDecoder) artworkItems(f *audiometa.File) []Item {
	artwork, err := f.ExtractArtwork()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("artwork extraction failed", "path", f.Path, "error", err)
		}
		return nil
	}
	items := make([]Item, 0, len(artwork))
	for _, art := range artwork {
		items = append(items, BytesItem(art.Data))
	}
	return items
}

// convertInfo exposes audiometa's technical properties under the
// attribute names the extension collector reads. Zero-valued fields
// the library uses to mean "not applicable" are left absent.
func convertInfo(audio audiometa.AudioInfo) *Info {
	info := NewInfo().
		Set("length", Float(audio.Duration.Seconds())).
		Set("bitrate", Int(int64(audio.Bitrate))).
		Set("sample_rate", Int(int64(audio.SampleRate))).
		Set("channels", Int(int64(audio.Channels))).
		Set("bitrate_mode", Bool(audio.VBR))

	if audio.BitDepth > 0 {
		info.Set("bits_per_sample", Int(int64(audio.BitDepth)))
	}
	if audio.Codec != "" {
		info.Set("codec", Text(audio.Codec))
	}
	if audio.CodecDescription != "" {
		info.Set("codec_description", Text(audio.CodecDescription))
	}
	if rg := audio.ReplayGain; rg != nil {
		info.Set("track_gain", Float(rg.TrackGain)).
			Set("track_peak", Float(rg.TrackPeak)).
			Set("album_gain", Float(rg.AlbumGain)).
			Set("album_peak", Float(rg.AlbumPeak))
	}
	return info
}
