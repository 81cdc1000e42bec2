package raster

import "sync"

// forRows calls fn for every row in [y0, y1).
//
// With more than one worker the rows are handed out over a channel, so
// each row, and therefore each pixel, is processed by exactly one
// goroutine. forRows returns after all rows are done.
func (r *Rasterizer) forRows(y0, y1 int, fn func(y int)) {
	workers := min(r.Workers, y1-y0)
	if workers <= 1 {
		for y := y0; y < y1; y++ {
			fn(y)
		}
		return
	}

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				fn(y)
			}
		}()
	}
	for y := y0; y < y1; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}
