package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	defer Reset()

	stop := Track("world.Build")
	time.Sleep(time.Millisecond)
	stop()
	Track("world.Build")()
	Track("meshing.BuildWorld")()

	snap := Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(snap))
	}
	if snap["world.Build"] < time.Millisecond {
		t.Errorf("world.Build total %v shorter than the sleep", snap["world.Build"])
	}
	if SumWithPrefix("world.") != snap["world.Build"] {
		t.Errorf("SumWithPrefix(world.) = %v, want %v", SumWithPrefix("world."), snap["world.Build"])
	}
}

func TestTopN(t *testing.T) {
	Reset()
	defer Reset()

	stop := Track("slow")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("fast")()

	got := TopN(1)
	if !strings.HasPrefix(got, "slow:") {
		t.Errorf("TopN(1) = %q, want slow bucket first", got)
	}
	if parts := strings.Split(TopN(10), ", "); len(parts) != 2 {
		t.Errorf("TopN(10) returned %d entries, want 2", len(parts))
	}
	for _, n := range []int{0, -1, -100} {
		if got := TopN(n); got != "" {
			t.Errorf("TopN(%d) = %q, want empty", n, got)
		}
	}
}
