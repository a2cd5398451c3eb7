package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	tests := []struct {
		workers int
		want    int
	}{
		{4, 4},
		{0, runtime.GOMAXPROCS(0)},
		{-5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		p := NewPool(tt.workers)
		if p.Workers() != tt.want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", tt.workers, p.Workers(), tt.want)
		}
		p.Close()
	}
}

func TestPool_Run(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var counter atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		jobs[i] = func() { counter.Add(1) }
	}
	p.Run(jobs)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
	p.Run(nil)
}

func TestPool_Map(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}
	out := Map(p, in, func(i, v int) int { return v * v })
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPool_NilAndClosedRunInline(t *testing.T) {
	var nilPool *Pool
	out := Map(nilPool, []string{"a", "b"}, func(_ int, s string) string { return s + s })
	if out[0] != "aa" || out[1] != "bb" {
		t.Errorf("nil pool Map = %v", out)
	}
	if nilPool.Workers() != 1 {
		t.Errorf("nil pool Workers() = %d, want 1", nilPool.Workers())
	}
	nilPool.Close()

	p := NewPool(2)
	p.Close()
	p.Close()
	var ran int
	p.Run([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("closed pool ran %d jobs, want 2", ran)
	}
}

func TestPool_Concurrent(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var (
		counter atomic.Int64
		wg      sync.WaitGroup
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs := make([]func(), 50)
			for i := range jobs {
				jobs[i] = func() { counter.Add(1) }
			}
			p.Run(jobs)
		}()
	}
	wg.Wait()

	if counter.Load() != 400 {
		t.Errorf("counter = %d, want 400", counter.Load())
	}
}

func TestPool_UnevenJobs(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var slow, fast atomic.Int64
	jobs := make([]func(), 100)
	for i := range jobs {
		if i%10 == 0 {
			jobs[i] = func() {
				time.Sleep(5 * time.Millisecond)
				slow.Add(1)
			}
			continue
		}
		jobs[i] = func() { fast.Add(1) }
	}
	p.Run(jobs)

	if slow.Load() != 10 || fast.Load() != 90 {
		t.Errorf("slow = %d, fast = %d, want 10 and 90", slow.Load(), fast.Load())
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for range 5 {
		p := NewPool(4)
		jobs := make([]func(), 100)
		for j := range jobs {
			jobs[j] = func() {}
		}
		p.Run(jobs)
		p.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	if final := runtime.NumGoroutine(); final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}
