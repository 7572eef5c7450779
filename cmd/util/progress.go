package util

// Progress tracks a batch of per-structure jobs, reporting completion
// counts as they finish and keeping the processed/skipped tally that is
// printed at the end of a run. Failures are warnings, never fatal: one
// bad structure must not abort the batch.
type Progress struct {
	results chan error
	done    chan struct{}
	ok, bad int
}

func NewProgress(total int) *Progress {
	p := &Progress{results: make(chan error), done: make(chan struct{})}
	go func() {
		for err := range p.results {
			if err == nil {
				p.ok++
			} else {
				p.bad++
				Warning(err)
			}
			ratio := 100.0
			if total > 0 {
				ratio = 100.0 * float64(p.ok+p.bad) / float64(total)
			}
			Verbosef("\r%d of %d structures read (%0.2f%%, %d skipped)",
				p.ok+p.bad, total, ratio, p.bad)
		}
		Verbosef("\n")
		p.done <- struct{}{}
	}()
	return p
}

// JobDone records one finished structure. A nil error counts it as
// processed; anything else counts it as skipped and warns.
func (p *Progress) JobDone(err error) {
	p.results <- err
}

// Close waits for all pending results and returns the processed and
// skipped counts.
func (p *Progress) Close() (processed, skipped int) {
	close(p.results)
	<-p.done
	return p.ok, p.bad
}
