package game

import "github.com/kamstrup/intmap"

// kickClass selects which wall-kick table a variant rotates with. The
// I piece has its own table; the O piece has none, since all of its poses
// are identical.
type kickClass uint8

const (
	kickNone kickClass = iota
	kickBox3
	kickBar
)

// kickEntry holds, for one target orientation, the anchor offset applied
// by the rotation itself plus the ordered nudges tried against the board.
type kickEntry struct {
	offset   Cell
	attempts [5]Cell
}

// kickTable maps packed (class, target orientation) keys to kick entries.
var kickTable = intmap.New[uint32, kickEntry](16)

func kickKey(class kickClass, target Orientation) uint32 {
	return uint32(class)<<8 | uint32(target)
}

func init() {
	box3Offsets := [orientationCount]Cell{{0, -1}, {1, 1}, {-1, 0}, {0, 0}}
	box3Attempts := [orientationCount][5]Cell{
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	}

	barOffsets := [orientationCount]Cell{{-1, -2}, {2, 2}, {-2, -1}, {1, 1}}
	barAttempts := [orientationCount][5]Cell{
		{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	}

	for target := Up; target < orientationCount; target++ {
		kickTable.Put(kickKey(kickBox3, target), kickEntry{
			offset:   box3Offsets[target],
			attempts: box3Attempts[target],
		})
		kickTable.Put(kickKey(kickBar, target), kickEntry{
			offset:   barOffsets[target],
			attempts: barAttempts[target],
		})
	}
}
