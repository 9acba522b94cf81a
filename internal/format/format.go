// Package format classifies audio filenames into canonical format identifiers.
package format

import (
	"path/filepath"
	"strings"
)

// ID is a canonical format identifier. Each fixture file groups cases
// sharing one ID.
type ID string

// Unknown is returned for extensions with no table entry.
const Unknown ID = "unknown"

// extensions maps a lowercase file extension (no dot) to its format ID.
// Aliases share an entry: m4b is the m4a container, dff is DSDIFF, etc.
var extensions = map[string]ID{
	"mp3":  "mp3",
	"flac": "flac",

	"m4a": "m4a",
	"m4b": "m4a",
	"m4p": "m4a",
	"3g2": "m4a",
	"mp4": "mp4",

	"wav":  "wave",
	"wave": "wave",

	"aif":  "aiff",
	"aiff": "aiff",
	"aifc": "aiff",

	"asf": "asf",
	"wma": "asf",

	"apev2": "apev2",
	"mpc":   "musepack",
	"wv":    "wavpack",
	"tak":   "tak",
	"dsf":   "dsf",

	"dff":    "dsdiff",
	"dsdiff": "dsdiff",

	"aac":  "aac",
	"ac3":  "ac3",
	"eac3": "eac3",

	"ogg":       "ogg",
	"oga":       "ogg",
	"opus":      "ogg",
	"spx":       "ogg",
	"oggtheora": "ogg",
	"oggflac":   "ogg",
	"ogv":       "ogg",

	"tta": "trueAudio",
	"ofr": "optimFrog",
	"ofs": "optimFrog",

	"mid": "smf",
	"smf": "smf",

	"ape": "monkeysAudio",
	"id3": "id3",
}

// FromFilename classifies a filename by its extension. It is total:
// unrecognized or missing extensions yield Unknown, never an error.
func FromFilename(name string) ID {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if id, ok := extensions[ext]; ok {
		return id
	}
	return Unknown
}
