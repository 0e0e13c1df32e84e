package main

import (
	"sync"

	"github.com/gosuri/uiprogress"

	"github.com/revelaction/autoredactle/storage"
)

// progress drives one uiprogress bar. The bar is created on the first call,
// when the total is known.
type progress struct {
	mu  sync.Mutex
	bar *uiprogress.Bar
}

// newProgress returns a progress callback and a stop function. Both are no-ops
// when ui.Progress is false.
func newProgress(ui UI) (storage.ProgressFunc, func()) {
	if !ui.Progress {
		return nil, func() {}
	}

	p := &progress{}
	uiprogress.Start()
	return p.incr, uiprogress.Stop
}

func (p *progress) incr(total int, title string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		p.bar = uiprogress.AddBar(total)
		p.bar.AppendCompleted()
		p.bar.PrependElapsed()
	}
	p.bar.Incr()
}
