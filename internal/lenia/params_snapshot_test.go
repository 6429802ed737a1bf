package lenia

import "testing"

func TestParameterSnapshotCoversControls(t *testing.T) {
	world := testWorld(16, 16, "orbium")

	byKey := map[string]bool{}
	for _, group := range world.Parameters().Groups {
		for _, param := range group.Params {
			byKey[param.Key] = true
		}
	}
	for _, ctrl := range world.ParameterControls() {
		if !byKey[ctrl.Key] {
			t.Fatalf("control %q has no matching snapshot parameter", ctrl.Key)
		}
	}
}

func TestSetFloatParameter(t *testing.T) {
	world := testWorld(16, 16, "orbium")

	if !world.SetFloatParameter("mu", 0.3) {
		t.Fatal("mu update rejected")
	}
	if got := world.Settings().Mu; got != 0.3 {
		t.Fatalf("mu = %v, want 0.3", got)
	}

	before := world.Settings().Sigma
	if world.SetFloatParameter("sigma", 0) {
		t.Fatal("zero sigma must be rejected")
	}
	if got := world.Settings().Sigma; got != before {
		t.Fatalf("sigma changed to %v after rejected update", got)
	}

	if world.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown key must be rejected")
	}
}

func TestSetIntParameter(t *testing.T) {
	world := testWorld(16, 16, "orbium")

	if !world.SetIntParameter("r", 20) {
		t.Fatal("radius update rejected")
	}
	if got := world.Settings().R; got != 20 {
		t.Fatalf("R = %v, want 20", got)
	}

	if world.SetIntParameter("r", 0) {
		t.Fatal("zero radius must be rejected")
	}
	if world.SetIntParameter("speed", 0) {
		t.Fatal("zero speed must be rejected")
	}
	if !world.SetIntParameter("speed", 4) {
		t.Fatal("speed update rejected")
	}
}
