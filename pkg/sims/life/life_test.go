package life

import (
	"image"
	"testing"

	"lifegrid/pkg/core"
)

func gridOf(n int, pts ...image.Point) core.Grid {
	alive := make(map[image.Point]bool, len(pts))
	for _, p := range pts {
		alive[p] = true
	}
	return core.GridFrom(n, func(x, y int) bool { return alive[image.Pt(x, y)] })
}

func expectAlive(t *testing.T, g core.Grid, want ...image.Point) {
	t.Helper()
	expects := make(map[image.Point]bool, len(want))
	for _, p := range want {
		expects[p] = true
	}
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			if alive := g.Alive(x, y); alive != expects[image.Pt(x, y)] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v\n%s", x, y, alive, expects[image.Pt(x, y)], g)
			}
		}
	}
}

// checkRule recomputes every cell of next from cur by counting neighbours
// independently of NextGeneration.
func checkRule(t *testing.T, cur, next core.Grid, policy EdgePolicy) {
	t.Helper()
	n := cur.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			count := 0
			for _, d := range []image.Point{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
				nx, ny := x+d.X, y+d.Y
				if policy == Toroidal {
					nx, ny = (nx+n)%n, (ny+n)%n
				}
				if cur.Alive(nx, ny) {
					count++
				}
			}
			want := count == 3 || (count == 2 && cur.Alive(x, y))
			if next.Alive(x, y) != want {
				t.Fatalf("%v: cell (%d,%d) with %d neighbours alive=%v, expected %v", policy, x, y, count, next.Alive(x, y), want)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, policy := range []EdgePolicy{Bounded, Toroidal} {
		g := gridOf(5, image.Pt(2, 1), image.Pt(2, 2), image.Pt(2, 3))

		g = NextGeneration(g, policy)
		expectAlive(t, g, image.Pt(1, 2), image.Pt(2, 2), image.Pt(3, 2))

		g = NextGeneration(g, policy)
		expectAlive(t, g, image.Pt(2, 1), image.Pt(2, 2), image.Pt(2, 3))
	}
}

func TestNextGenerationIsPure(t *testing.T) {
	soup := SeedRandom(20, 7, 0.4)
	before := soup.String()
	for _, policy := range []EdgePolicy{Bounded, Toroidal} {
		a := NextGeneration(soup, policy)
		b := NextGeneration(soup, policy)
		if !a.Equal(b) {
			t.Fatalf("%v: repeated evaluation differs", policy)
		}
		if soup.String() != before {
			t.Fatalf("%v: input grid was modified", policy)
		}
		checkRule(t, soup, a, policy)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	for _, policy := range []EdgePolicy{Bounded, Toroidal} {
		for _, p := range []image.Point{{0, 0}, {5, 5}, {9, 0}} {
			next := NextGeneration(gridOf(10, p), policy)
			if pop := next.Population(); pop != 0 {
				t.Fatalf("%v: lone cell at %v left %d live cells", policy, p, pop)
			}
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	state := core.NewGridState(35)
	if _, err := DefaultCatalog().Apply("Block", state); err != nil {
		t.Fatalf("apply: %v", err)
	}
	g := state.Snapshot()
	if next := NextGeneration(g, Bounded); !next.Equal(g) {
		t.Fatalf("block changed after one step:\n%s", next)
	}
}

func TestBoundedCornerHasDeadBorder(t *testing.T) {
	// Under wrapping these three corner cells are mutual neighbours of
	// (4,4) and bring it to life; behind a dead border nothing is born there.
	g := gridOf(5, image.Pt(0, 0), image.Pt(4, 0), image.Pt(0, 4))

	bounded := NextGeneration(g, Bounded)
	if bounded.Alive(4, 4) {
		t.Fatal("bounded policy must not count neighbours across the border")
	}
	torus := NextGeneration(g, Toroidal)
	if !torus.Alive(4, 4) {
		t.Fatal("toroidal policy should wrap neighbours across the border")
	}
}

func TestGliderDivergesAtEdges(t *testing.T) {
	state := core.NewGridState(35)
	if _, err := DefaultCatalog().Apply("Glider", state); err != nil {
		t.Fatalf("apply: %v", err)
	}
	start := state.Snapshot()

	bounded, torus := start, start
	for i := 0; i < 140; i++ {
		nextBounded := NextGeneration(bounded, Bounded)
		nextTorus := NextGeneration(torus, Toroidal)
		checkRule(t, bounded, nextBounded, Bounded)
		checkRule(t, torus, nextTorus, Toroidal)
		bounded, torus = nextBounded, nextTorus
	}

	if bounded.Equal(torus) {
		t.Fatal("expected bounded and toroidal grids to differ once the glider reaches the edge")
	}
	// The glider moves one cell diagonally every four generations, so after
	// 4*35 steps on a 35-cell torus it is back where it started.
	if !torus.Equal(start) {
		t.Fatalf("toroidal glider did not return home:\n%s", torus)
	}
	expectAlive(t, bounded, image.Pt(32, 33), image.Pt(33, 33), image.Pt(32, 34), image.Pt(33, 34))
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]EdgePolicy{"bounded": Bounded, "toroidal": Toroidal, "torus": Toroidal, "": Bounded}
	for name, want := range cases {
		got, err := ParsePolicy(name)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParsePolicy("klein"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
