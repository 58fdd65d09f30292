package life

import (
	"errors"
	"slices"
	"testing"

	"torus-life/internal/core"
)

var _ core.Sim = (*Life)(nil)

func TestSimTickSwapsThenSteps(t *testing.T) {
	sim, err := NewSim(12, 10, WithSeed(4))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	seed := slices.Clone(sim.Cells())

	ref, _ := New(12, 10, WithSeed(4))
	ref.Step()
	gen1 := slices.Clone(ref.Next())

	sim.Step()
	if !slices.Equal(seed, sim.Cells()) {
		t.Fatal("first tick should display the seeded generation")
	}
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d after one tick, want 1", sim.Generation())
	}
	if !slices.Equal(gen1, sim.Grid().Next()) {
		t.Fatal("first tick should compute the next generation from the seed")
	}

	sim.Step()
	if !slices.Equal(gen1, sim.Cells()) {
		t.Fatal("second tick should display the first computed generation")
	}
}

func TestSimResetIsDeterministic(t *testing.T) {
	sim, _ := NewSim(20, 20, WithSeed(1))
	for i := 0; i < 5; i++ {
		sim.Step()
	}

	sim.Reset(77)
	want, _ := New(20, 20, WithSeed(77))
	if !slices.Equal(want.Current(), sim.Cells()) {
		t.Fatal("Reset(77) did not reproduce the seed-77 generation")
	}
	if sim.Generation() != 0 {
		t.Fatalf("generation = %d after Reset, want 0", sim.Generation())
	}
	if sim.Population() != want.Population() {
		t.Fatalf("population = %d, want %d", sim.Population(), want.Population())
	}
}

func TestSimMetadata(t *testing.T) {
	sim, _ := NewSim(30, 15, WithSeed(2))
	if sim.Name() != "life" {
		t.Fatalf("Name() = %q", sim.Name())
	}
	if sim.Size() != (core.Size{W: 30, H: 15}) {
		t.Fatalf("Size() = %+v", sim.Size())
	}
	if len(sim.Cells()) != sim.Size().Cells() {
		t.Fatalf("len(Cells()) = %d, want %d", len(sim.Cells()), sim.Size().Cells())
	}

	if _, err := NewSim(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewSim(0, 10) err = %v, want ErrInvalidSize", err)
	}
}
