package regexfa

// mix32 is the 32 bit finalization step of MurmurHash3.
func mix32(v uint32) uint32 {
	v = (v ^ (v >> 16)) * 0x85ebca6b
	v = (v ^ (v >> 13)) * 0xc2b2ae35
	return v ^ (v >> 16)
}

func mixInt(v int) uint64 {
	return uint64(mix32(uint32(v)))
}

func hashString(s string) uint64 {
	h := uint64(len(s))
	for _, r := range s {
		h = h*31 + uint64(mix32(uint32(r)))
	}
	return h
}
