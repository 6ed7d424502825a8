package main

import "testing"

func TestCrosshairs_SightHold(t *testing.T) {
	c := NewCrosshairs(8, 3)
	if c.IsSightIndicatorActive() {
		t.Fatal("active before the goal was seen")
	}
	c.ActivateSightIndicator()
	for i := 0; i < 3; i++ {
		if !c.IsSightIndicatorActive() {
			t.Fatalf("inactive after %d ticks, want 3 ticks of hold", i)
		}
		c.Update()
	}
	if c.IsSightIndicatorActive() {
		t.Fatal("still active after the hold elapsed")
	}
}
