package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/nyan233/soix"
)

func main() {
	t, err := soix.New[uint64, string](soix.Config{})
	if err != nil {
		panic(err)
	}
	// write data
	for i := uint64(0); i < 64; i++ {
		t.Put(i, strconv.FormatUint(rand.Uint64(), 10))
	}
	// read data
	for i := uint64(0); i < 64; i++ {
		k := rand.Uint64N(63)
		v, found := t.Get(k)
		if !found {
			panic(fmt.Errorf("not found :%d", k))
		}
		fmt.Printf("tree.getVal key=%d, val=%s\n", k, v)
	}
	minKey, _ := t.MinKey()
	maxKey, _ := t.MaxKey()
	fmt.Printf("len=%d, height=%d, minKey=%d, maxKey=%d\n",
		t.Len(), t.Height(), minKey, maxKey)
}
