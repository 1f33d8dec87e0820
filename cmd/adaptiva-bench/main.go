// Command adaptiva-bench exercises the adaptive array end to end: a timed
// sequential insert/verify run, a timed search for the last value, a
// negative overwrite pass, and three random value distributions.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/auselen/adaptiva"
)

const loop = 65536

func main() {
	arr := adaptiva.New()

	start := time.Now()
	for i := 0; i < loop; i++ {
		arr.Insert(i, int32(i))
	}
	fmt.Printf("inserting %d sequential values took %v\n", loop, time.Since(start))
	verify(arr, func(i int) int32 { return int32(i) })
	fmt.Println("status:", arr.Stats())

	want := int32(loop - 1)
	start = time.Now()
	pos := arr.Find(want)
	elapsed := time.Since(start)
	if pos == adaptiva.NotFound || arr.Get(pos) != want {
		fmt.Println("failed to find!")
	} else {
		fmt.Printf("find took %v [%d]=%d\n", elapsed, pos, arr.Get(pos))
	}

	for i := 0; i < loop; i++ {
		arr.Insert(i, int32(-i))
	}
	verify(arr, func(i int) int32 { return int32(-i) })
	fmt.Println("status:", arr.Stats())

	arr.Reset()
	for i := 0; i < loop; i++ {
		arr.Insert(i, int32(rand.Intn(2)))
	}
	fmt.Println("status:", arr.Stats())

	arr.Reset()
	for i := 0; i < loop; i++ {
		arr.Insert(i, int32(rand.Intn(15)+1))
	}
	fmt.Printf("find(%d) = %d\n", 15, arr.Find(15))
	fmt.Println("status:", arr.Stats())

	arr.Reset()
	for i := 0; i < loop; i++ {
		arr.Insert(i, int32(rand.Intn(511)-255))
	}
	fmt.Printf("find(%d) = %d\n", 255, arr.Find(255))
	fmt.Println("status:", arr.Stats())
}

// verify reports the index ranges where the array disagrees with the
// expected sequence.
func verify(arr *adaptiva.Array, want func(int) int32) {
	from := -1
	for i := 0; i < loop; i++ {
		if arr.Get(i) != want(i) {
			if from < 0 {
				from = i
			}
		} else if from >= 0 {
			fmt.Printf("error at [%d..%d)\n", from, i)
			from = -1
		}
	}
	if from >= 0 {
		fmt.Printf("error at [%d..%d)\n", from, loop)
	}
}
