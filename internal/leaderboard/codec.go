package leaderboard

import "encoding/binary"

// On-disk layout, little endian and unpadded:
//
//	entry  = name [16]byte | timestamp int64 | score uint16
//	record = one entry per category, in Categories() order
//
// Record i holds rank i+1 of every category.
const (
	EntrySize  = NameSize + 8 + 2
	RecordSize = EntrySize * numCategories
)

// Load decodes as many whole records as b holds, up to Capacity. A trailing
// partial record is ignored. The returned count is the number of records
// decoded.
func Load(b []byte) (*Table, int) {
	t := NewTable()
	records := min(len(b)/RecordSize, Capacity)
	cats := Categories()
	for r := 0; r < records; r++ {
		rec := b[r*RecordSize : (r+1)*RecordSize]
		for i, c := range cats {
			t.lists[c].entries[r] = decodeEntry(rec[i*EntrySize : (i+1)*EntrySize])
		}
	}
	for _, l := range t.lists {
		l.n = records
	}
	return t, records
}

// Serialize encodes exactly records records. Ranks a category has not
// filled are written as zero entries.
func (t *Table) Serialize(records int) []byte {
	records = max(0, min(records, Capacity))
	buf := make([]byte, records*RecordSize)
	cats := Categories()
	for r := 0; r < records; r++ {
		rec := buf[r*RecordSize : (r+1)*RecordSize]
		for i, c := range cats {
			var e Entry
			if l := t.lists[c]; r < l.n {
				e = l.entries[r]
			}
			encodeEntry(rec[i*EntrySize:(i+1)*EntrySize], e)
		}
	}
	return buf
}

func encodeEntry(dst []byte, e Entry) {
	copy(dst[:NameSize], e.Name[:])
	dst[NameSize-1] = 0
	binary.LittleEndian.PutUint64(dst[NameSize:], uint64(e.Timestamp))
	binary.LittleEndian.PutUint16(dst[NameSize+8:], e.Score)
}

func decodeEntry(src []byte) Entry {
	var e Entry
	copy(e.Name[:], src[:NameSize])
	e.Name[NameSize-1] = 0
	e.Timestamp = int64(binary.LittleEndian.Uint64(src[NameSize:]))
	e.Score = binary.LittleEndian.Uint16(src[NameSize+8:])
	return e
}
