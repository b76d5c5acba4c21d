package enemy

import (
	"errors"
	"math"
	"testing"

	"go-grid-defense/internal/component"
	"go-grid-defense/internal/defs"
	"go-grid-defense/internal/interfaces"
)

// spawnWithPath builds an enemy and feeds it the given waypoints through the
// stub provider, ticking twice so the request resolves.
func spawnWithPath(t *testing.T, waypoints []component.Waypoint) (*Enemy, *stubPathProvider) {
	t.Helper()
	provider := newStubPathProvider()
	e := New(1, Deps{PathProvider: provider}, &component.Position{X: 0, Y: 0.5, Z: 0}, defs.ClassBasic, 1, defs.ElementNormal)
	provider.results <- interfaces.PathResult{Waypoints: waypoints}
	e.Update(0.001) // issue the request
	e.Update(0.001) // poll and install
	if e.AwaitingPath() {
		t.Fatal("Setup failed: path was not installed")
	}
	return e, provider
}

func TestAwaitingPathUntilWaypointsArrive(t *testing.T) {
	provider := newStubPathProvider()
	e := New(1, Deps{PathProvider: provider}, &component.Position{X: 2, Y: 0.5, Z: 3}, defs.ClassBasic, 1, defs.ElementNormal)

	for i := 0; i < 10; i++ {
		e.Update(0.05)
		pos := e.Position()
		if pos.X != 2 || pos.Z != 3 {
			t.Fatalf("Enemy moved while awaiting path: %+v", pos)
		}
		if !e.AwaitingPath() {
			t.Fatal("Expected AwaitingPath state")
		}
	}

	provider.results <- interfaces.PathResult{Waypoints: []component.Waypoint{{X: 12, Z: 3}}}
	e.Update(0.05) // install
	e.Update(0.05) // first step toward waypoint[0]

	pos := e.Position()
	if pos.X <= 2 {
		t.Errorf("Expected movement toward the waypoint, x = %v", pos.X)
	}
	if pos.Z != 3 {
		t.Errorf("Expected straight-line x movement, z = %v", pos.Z)
	}
}

func TestMovementNeverOvershootsWaypoint(t *testing.T) {
	e, _ := spawnWithPath(t, []component.Waypoint{{X: 1, Z: 0}, {X: 50, Z: 0}})

	// A huge step toward a close waypoint must clamp exactly onto it.
	e.Update(10)
	pos := e.Position()
	if pos.X > 1+1e-9 {
		t.Errorf("Overshot the waypoint: x = %v", pos.X)
	}
}

func TestReachedEndIsTerminal(t *testing.T) {
	e, _ := spawnWithPath(t, []component.Waypoint{{X: 0.5, Z: 0}})

	for i := 0; i < 100 && !e.HasReachedEnd(); i++ {
		e.Update(0.05)
	}
	if !e.HasReachedEnd() {
		t.Fatal("Enemy never reached the end of its path")
	}

	pos := e.Position()
	for i := 0; i < 10; i++ {
		e.Update(0.05)
	}
	after := e.Position()
	if after != pos {
		t.Errorf("Terminal enemy moved: %+v -> %+v", pos, after)
	}
}

func TestPathRequestCooldownIsEnforced(t *testing.T) {
	provider := newStubPathProvider()
	e := New(1, Deps{PathProvider: provider}, &component.Position{}, defs.ClassBasic, 1, defs.ElementNormal)

	// Resolve the first request with an empty path so the enemy keeps waiting.
	provider.results <- interfaces.PathResult{Waypoints: nil}
	e.Update(0.016)
	if provider.requests != 1 {
		t.Fatalf("Expected one initial request, got %d", provider.requests)
	}
	e.Update(0.016) // drains the empty resolution

	// Under a second of simulated time: still inside the cooldown window.
	for i := 0; i < 30; i++ {
		e.Update(0.016)
	}
	if provider.requests != 1 {
		t.Errorf("Cooldown not enforced, %d requests", provider.requests)
	}

	// Push past the cooldown.
	for i := 0; i < 40; i++ {
		e.Update(0.016)
	}
	if provider.requests != 2 {
		t.Errorf("Expected a retry after the cooldown, got %d requests", provider.requests)
	}
}

func TestNoSecondRequestWhileOneInFlight(t *testing.T) {
	provider := newStubPathProvider()
	e := New(1, Deps{PathProvider: provider}, &component.Position{}, defs.ClassBasic, 1, defs.ElementNormal)

	// Never resolve the request; simulate far past the cooldown.
	for i := 0; i < 200; i++ {
		e.Update(0.016)
	}
	if provider.requests != 1 {
		t.Errorf("Issued %d requests while one was already in flight", provider.requests)
	}
}

func TestFailedPathRequestRetriesAfterCooldown(t *testing.T) {
	provider := newStubPathProvider()
	e := New(1, Deps{PathProvider: provider}, &component.Position{}, defs.ClassBasic, 1, defs.ElementNormal)

	provider.results <- interfaces.PathResult{Err: errors.New("no route to exit")}
	e.Update(0.016)
	e.Update(0.016) // drains the failure, enemy keeps waiting

	if !e.AwaitingPath() {
		t.Fatal("Expected enemy to remain in awaiting state after a failure")
	}

	provider.results <- interfaces.PathResult{Waypoints: []component.Waypoint{{X: 5, Z: 0}}}
	for i := 0; i < 80; i++ {
		e.Update(0.016)
	}
	if e.AwaitingPath() {
		t.Error("Expected a successful retry after the cooldown")
	}
	if provider.requests != 2 {
		t.Errorf("Expected exactly two requests, got %d", provider.requests)
	}
}

func TestClearPathReentersAwaiting(t *testing.T) {
	e, provider := spawnWithPath(t, []component.Waypoint{{X: 20, Z: 0}})

	e.Update(0.05)
	if e.AwaitingPath() {
		t.Fatal("Enemy should be following its path")
	}

	e.ClearPath()
	if !e.AwaitingPath() {
		t.Error("Expected AwaitingPath after the path was cleared")
	}

	// It re-requests once its cooldown allows.
	requestsBefore := provider.requests
	for i := 0; i < 80; i++ {
		e.Update(0.016)
	}
	if provider.requests <= requestsBefore {
		t.Error("Expected a new path request after ClearPath")
	}
}

func TestDistanceToExitTracksFinalWaypoint(t *testing.T) {
	e, _ := spawnWithPath(t, []component.Waypoint{{X: 3, Z: 0}, {X: 3, Z: 4}})

	e.Update(0.001)
	want := math.Sqrt(3*3+4*4) - 0 // from near origin to (3,4), minus negligible movement
	if math.Abs(e.DistanceToExit()-want) > 0.1 {
		t.Errorf("Expected distance ~%v, got %v", want, e.DistanceToExit())
	}
}

func TestWaypointAdvanceMovesTowardNextTarget(t *testing.T) {
	e, _ := spawnWithPath(t, []component.Waypoint{{X: 0.1, Z: 0}, {X: 0.1, Z: 10}})

	// Waypoint[0] is already inside the arrival radius, so the same tick
	// must advance the index and step toward waypoint[1].
	e.Update(0.1)
	pos := e.Position()
	if pos.Z <= 0 {
		t.Errorf("Expected movement toward the next waypoint, z = %v", pos.Z)
	}
	if e.HasReachedEnd() {
		t.Error("Enemy skipped to terminal state")
	}
}
