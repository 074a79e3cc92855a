package gui

import (
	"fmt"
	"hash/fnv"
)

// ID identifies a widget across frames without a persistent widget object.
//
// It combines a hash of the widget's text with the caller's disambiguator.
// Two widgets with the same text and the same disambiguator share an ID and
// therefore share hover, active and click state. A copy the pointer is not
// over gives up the shared hot register, so when the pointer is over a later
// copy an earlier copy takes the release and neither copy clicks. Supply
// WithID in loops or wherever labels repeat.
type ID struct {
	text uint64
	key  string
}

// NoID is the empty register value.
var NoID ID

// MakeID returns the identity of a widget showing text with disambiguator key.
func MakeID(text, key string) ID {
	h := fnv.New64a()
	h.Write([]byte(text))
	return ID{text: h.Sum64(), key: key}
}

// IsNone reports whether id is the empty register value.
func (id ID) IsNone() bool {
	return id == NoID
}

// String implements fmt.Stringer.
func (id ID) String() string {
	if id.IsNone() {
		return "none"
	}
	if id.key == "" {
		return fmt.Sprintf("%016x", id.text)
	}
	return fmt.Sprintf("%016x#%s", id.text, id.key)
}
