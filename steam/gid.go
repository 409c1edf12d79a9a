package steam

import "time"

// GlobalID is a Steam gid_t: a 64-bit id packing box, process, process
// start time and a sequence counter.
type GlobalID uint64

var gidEpoch = time.Date(2005, time.January, 1, 0, 0, 0, 0, time.UTC)

func (g GlobalID) SequentialCount() uint32 { return uint32(g & 0xFFFFF) }

func (g GlobalID) StartTime() time.Time {
	return gidEpoch.Add(time.Duration((g>>20)&0x3FFFFFFF) * time.Second)
}

func (g GlobalID) ProcessID() uint32 { return uint32((g >> 50) & 0xF) }

func (g GlobalID) BoxID() uint32 { return uint32((g >> 54) & 0x3FF) }

// NewGlobalID packs the components back into a GlobalID.
func NewGlobalID(box, process uint32, start time.Time, sequence uint32) GlobalID {
	seconds := uint64(start.Sub(gidEpoch)/time.Second) & 0x3FFFFFFF
	return GlobalID(uint64(box&0x3FF)<<54 | uint64(process&0xF)<<50 | seconds<<20 | uint64(sequence&0xFFFFF))
}
