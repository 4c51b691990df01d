package main

import "testing"

func TestNoopObserverIsUsable(t *testing.T) {
	var o progressObserver = noop_observer{}
	o.set_total(10)
	o.tick(1, 2, 3)
	o.finish()
}

func TestLoggingObserverTracksTotal(t *testing.T) {
	o := new_logging_observer()
	o.set_total(5)
	if o.total != 5 {
		t.Fatalf("total = %d, want 5", o.total)
	}
	o.tick(1, 1, 5) // pairsDone == total forces an immediate emit regardless of throttling
	o.finish()
}
