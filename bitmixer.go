package automata

func mix(key int) int {
	return mix32(key)
}

// mix32 is the 32-bit finalizer step of MurmurHash3, used to spread
// state numbers before they are summed into an order-independent set
// hash.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
