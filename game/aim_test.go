package game

import "testing"

func TestLeadTargetStationary(t *testing.T) {
	got := LeadTarget(V(0, 0), V(100, 50), Vec2{}, 300)
	if got != V(100, 50) {
		t.Errorf("LeadTarget = %v, want the target itself", got)
	}
}

func TestLeadTargetIntercepts(t *testing.T) {
	from, pos, vel, speed := V(0, 0), V(300, 0), V(0, 100), 500.0
	aim := LeadTarget(from, pos, vel, speed)

	// flight time to the aim point must match the target's travel time
	tFlight := from.Distance(aim) / speed
	want := pos.Add(vel.Scale(tFlight))
	if !approxEqual(aim.X, want.X, 0.5) || !approxEqual(aim.Y, want.Y, 0.5) {
		t.Errorf("LeadTarget = %v, target is at %v by then", aim, want)
	}
	if aim.Y <= 0 {
		t.Errorf("LeadTarget = %v, want a point ahead of the target", aim)
	}
}
