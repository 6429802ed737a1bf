package species

import "testing"

func TestCatalogDefaultAndLookup(t *testing.T) {
	c := NewCatalog()
	if c.Len() < 1 {
		t.Fatal("catalog must contain at least one preset")
	}

	def := c.Default()
	if def.Name == "" {
		t.Fatal("default preset must be named")
	}
	if first := c.At(0); first.Name != def.Name {
		t.Fatalf("default %q is not the first entry %q", def.Name, first.Name)
	}

	got, ok := c.ByName(def.Name)
	if !ok {
		t.Fatalf("lookup of %q failed", def.Name)
	}
	if got.Name != def.Name {
		t.Fatalf("lookup returned %q, want %q", got.Name, def.Name)
	}

	if _, ok := c.ByName("no-such-species"); ok {
		t.Fatal("unknown name must report not-found")
	}
	if i := c.IndexOf("no-such-species"); i != -1 {
		t.Fatalf("IndexOf unknown = %d, want -1", i)
	}
}

func TestCatalogEntriesAreValid(t *testing.T) {
	c := NewCatalog()
	seen := map[string]bool{}
	for i := 0; i < c.Len(); i++ {
		sp := c.At(i)
		if sp.Name == "" {
			t.Fatalf("preset %d has no name", i)
		}
		if seen[sp.Name] {
			t.Fatalf("duplicate preset name %q", sp.Name)
		}
		seen[sp.Name] = true
		if sp.R <= 0 {
			t.Fatalf("%s: R = %d, want > 0", sp.Name, sp.R)
		}
		if len(sp.Beta) < 1 || len(sp.Beta) > 4 {
			t.Fatalf("%s: beta length %d, want 1..4", sp.Name, len(sp.Beta))
		}
		for j, b := range sp.Beta {
			if b < 0 {
				t.Fatalf("%s: beta[%d] = %v, want >= 0", sp.Name, j, b)
			}
		}
		if sp.KernelSigma <= 0 {
			t.Fatalf("%s: kernel sigma = %v, want > 0", sp.Name, sp.KernelSigma)
		}
		if sp.Sigma <= 0 {
			t.Fatalf("%s: growth sigma = %v, want > 0", sp.Name, sp.Sigma)
		}
		if sp.Mode == SeedExplicitPattern && sp.Pattern == nil {
			t.Fatalf("%s: explicit-pattern mode without a pattern", sp.Name)
		}
		for y, row := range sp.Pattern {
			for x, v := range row {
				if v < 0 || v > 1 {
					t.Fatalf("%s: pattern[%d][%d] = %v outside [0, 1]", sp.Name, y, x, v)
				}
			}
		}
	}
}

func TestCatalogHandsOutCopies(t *testing.T) {
	c := NewCatalog()
	first, _ := c.ByName(c.Default().Name)
	first.Beta[0] = 999
	if first.Pattern != nil {
		first.Pattern[0][0] = 999
	}

	fresh, _ := c.ByName(first.Name)
	if fresh.Beta[0] == 999 {
		t.Fatal("mutating a returned preset must not affect catalog state")
	}

	withPattern, ok := c.ByName("annulus")
	if !ok {
		t.Skip("no pattern preset in catalog")
	}
	withPattern.Pattern[0][0] = 999
	fresh, _ = c.ByName("annulus")
	if fresh.Pattern[0][0] == 999 {
		t.Fatal("mutating a returned pattern must not affect catalog state")
	}
}

func TestSeedModeRoundTrip(t *testing.T) {
	modes := []SeedMode{SeedClear, SeedBlob, SeedRandomBlob, SeedSpeciesBlob, SeedExplicitPattern}
	for _, mode := range modes {
		parsed, ok := ParseSeedMode(mode.String())
		if !ok {
			t.Fatalf("ParseSeedMode(%q) not recognized", mode.String())
		}
		if parsed != mode {
			t.Fatalf("round trip of %v yielded %v", mode, parsed)
		}
	}
	if _, ok := ParseSeedMode("bogus"); ok {
		t.Fatal("bogus mode name must not parse")
	}
}
