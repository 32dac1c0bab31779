package leaderboard

import (
	"bytes"
	"time"
	"unicode/utf8"
)

const (
	// NameSize is the fixed name buffer; the last byte is always NUL.
	NameSize   = 16
	MaxNameLen = NameSize - 1
)

type Entry struct {
	Name      [NameSize]byte
	Timestamp int64 // seconds since the Unix epoch
	Score     uint16
}

// NewEntry builds an entry, cutting name to MaxNameLen bytes without
// splitting a UTF-8 sequence.
func NewEntry(name string, at time.Time, score uint16) Entry {
	e := Entry{Timestamp: at.Unix(), Score: score}
	copy(e.Name[:], TruncateName(name))
	return e
}

// TruncateName shortens name to at most MaxNameLen bytes on a rune boundary.
func TruncateName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	cut := MaxNameLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

func (e Entry) PlayerName() string {
	if i := bytes.IndexByte(e.Name[:], 0); i >= 0 {
		return string(e.Name[:i])
	}
	return string(e.Name[:])
}

func (e Entry) Time() time.Time {
	return time.Unix(e.Timestamp, 0)
}
