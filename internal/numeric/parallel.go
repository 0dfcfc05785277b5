package numeric

import (
	"runtime"
	"sync"
)

// Parallel fans the half-open range [0,n) out over disjoint chunks and
// runs fn(lo, hi) for each chunk concurrently, waiting for every chunk to
// finish before returning. Chunk boundaries are deterministic (contiguous,
// increasing) so that a caller who accumulates serially within each chunk
// gets a reproducible partial order; only the *interleaving* across chunks
// is unordered, matching the "deterministic modulo floating-point
// associativity" contract callers rely on.
//
// minChunk bounds the smallest amount of work worth handing to its own
// goroutine; Parallel never spawns more than ceil(n/minChunk) goroutines,
// and never more than GOMAXPROCS.
//
// Complexity: O(n/minChunk) goroutines, each doing O(minChunk) work.
func Parallel(n, minChunk int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if minChunk < 1 {
		minChunk = 1
	}

	workers := (n + minChunk - 1) / minChunk
	if max := runtime.GOMAXPROCS(0); workers > max {
		workers = max
	}
	if workers < 1 {
		workers = 1
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
