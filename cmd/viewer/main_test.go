package main

import (
	"strings"
	"testing"
)

func TestWindowTitleKeepsSeed(t *testing.T) {
	for _, fps := range []int{-1, 0, 144} {
		got := windowTitle(1234, fps)
		if !strings.Contains(got, "seed 1234") {
			t.Errorf("windowTitle(1234, %d) = %q, missing seed", fps, got)
		}
	}
	if got := windowTitle(7, 60); !strings.HasSuffix(got, "FPS: 60") {
		t.Errorf("windowTitle(7, 60) = %q, missing FPS", got)
	}
}
