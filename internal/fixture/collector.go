package fixture

import (
	"math"
	"strings"

	"github.com/listenupapp/goldenfix/internal/canon"
	"github.com/listenupapp/goldenfix/internal/decoder"
)

// maxTagEntries caps how many container entries are even considered.
// The cap applies to enumeration order before the key filter, so a
// container with many filtered-out keys up front can legitimately
// yield fewer retained tags than it holds matching ones.
const maxTagEntries = 120

// wantedKeyPrefixes admits tag keys by prefix: the ID3v2 text-frame
// family ("T..."), common full names, and MP4 atom short codes. The
// `\xa9` entry is the literal four-character sequence, not the © rune;
// keys starting with the actual © rune are not admitted. Dependent
// test corpora are pinned against exactly this behavior, so it must
// not be corrected.
var wantedKeyPrefixes = []string{
	"T", "TITLE", "ARTIST", "ALBUM", "GENRE", "COMMENT",
	"\\xa9", "covr", "trkn", "disk", "tmpo", "cpil", "purl",
}

// wantedKeyNames admits keys whose uppercase form matches exactly,
// catching lowercase Vorbis-style names the prefixes miss.
var wantedKeyNames = map[string]struct{}{
	"TITLE":   {},
	"ARTIST":  {},
	"ALBUM":   {},
	"GENRE":   {},
	"COMMENT": {},
}

// CollectTags builds the expectedTags mapping for a decoded file. A
// nil tag container yields an empty mapping, not an error.
func CollectTags(file *decoder.File) map[string]canon.Value {
	tags := make(map[string]canon.Value)
	if file == nil || file.Tags == nil {
		return tags
	}

	entries := file.Tags
	if len(entries) > maxTagEntries {
		entries = entries[:maxTagEntries]
	}

	for _, entry := range entries {
		if entry.Key == "" || !wantedKey(entry.Key) {
			continue
		}
		if value, ok := canon.Normalize(entry.Value); ok {
			tags[entry.Key] = value
		}
	}
	return tags
}

func wantedKey(key string) bool {
	for _, prefix := range wantedKeyPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	_, ok := wantedKeyNames[strings.ToUpper(key)]
	return ok
}

// extensionAttrs is the fixed allow-list of decoder-specific technical
// attributes collected into expectedExtensions. Only some format
// decoders expose each of them.
var extensionAttrs = []string{
	"version", "layer", "bitrate_mode", "encoder_info", "codec",
	"codec_name", "codec_description", "track_gain", "track_peak",
	"album_gain", "album_peak", "title_gain", "title_peak",
}

// CollectExtensions builds the expectedExtensions mapping from the
// decoded file's info object. Booleans fold into the int kind (1/0);
// non-finite floats are omitted; everything non-numeric becomes a
// single-element text via its generic string form.
func CollectExtensions(file *decoder.File) map[string]canon.Value {
	ext := make(map[string]canon.Value)
	if file == nil || file.Info == nil {
		return ext
	}

	for _, name := range extensionAttrs {
		value, ok := file.Info.Attr(name)
		if !ok {
			continue
		}
		switch v := value.(type) {
		case decoder.BoolValue:
			n := int64(0)
			if v.Bool() {
				n = 1
			}
			ext[name] = canon.NewInt(n)
		case decoder.IntValue:
			ext[name] = canon.NewInt(v.Int())
		case decoder.FloatValue:
			if f := v.Float(); !math.IsNaN(f) && !math.IsInf(f, 0) {
				ext[name] = canon.NewDouble(f)
			}
		default:
			ext[name] = canon.NewText([]string{value.String()})
		}
	}
	return ext
}
