package handdrawn

import (
	"fmt"
	"hash/fnv"
)

const (
	greyMin = 0xb8
	greyMax = 0xee
)

// greyForID picks a light grey from the ID hash.
func greyForID(id string) string {
	v := greyMin + int(hash(id, 0)%uint64(greyMax-greyMin+1))
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}

// hash is FNV-1a over id, mixed with seed.
func hash(id string, seed uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	x := h.Sum64() ^ (seed * 0x9e3779b97f4a7c15)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return x
}
