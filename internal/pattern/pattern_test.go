package pattern

import (
	"testing"
)

func solidParams(c Color) Params {
	return Params{Colors: [Columns]Cycle{{c}, {c}, {c}}, Loop: true}
}

func TestCatalogTags(t *testing.T) {
	want := []string{
		"slow", "slow3", "hold", "normal", "normalodd", "normaleven",
		"hai", "senohai", "ohhai", "flash", "flash2", "fufu", "chase",
		"spin", "aozorahora", "aozoraashita", "aozoramasshigura",
		"hptintrofu", "hptsyncofu", "hptfufufu", "koinifufu",
		"koinitottemo", "koiniopen", "atpseichou", "atpfighting",
		"yumefufu", "yumefufufu", "jimoai", "hajimariyamenai",
		"hajimarigoeast",
	}
	for _, tag := range want {
		p, err := Lookup(tag)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", tag, err)
			continue
		}
		if p.Beats <= 0 {
			t.Errorf("Lookup(%q).Beats = %d, want > 0", tag, p.Beats)
		}
		if p.Render == nil {
			t.Errorf("Lookup(%q).Render is nil", tag)
		}
	}
	if got := len(Tags()); got != len(want) {
		t.Errorf("registered tags = %d, want %d", got, len(want))
	}
}

func TestLookupUnknownTag(t *testing.T) {
	if _, err := Lookup("moonwalk"); err == nil {
		t.Error("Lookup(unknown) error = nil, want ErrUnknownPattern")
	}
}

func TestRenderDeterminism(t *testing.T) {
	// Rendering the same (tick, period, params) twice yields identical
	// frames, for every tag at every tick of one movement.
	params := Params{
		Colors:  [Columns]Cycle{{Chika}, {You, Riko}, AqoursThirdYears},
		Loop:    true,
		Reverse: true,
	}
	for _, tag := range Tags() {
		p, err := Lookup(tag)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tag, err)
		}
		period := p.Period()
		for tick := 0; tick < period; tick++ {
			var a, b Frame
			p.Render(&a, tick, period, params)
			p.Render(&b, tick, period, params)
			if a != b {
				t.Errorf("%s: tick %d rendered differently on repeat", tag, tick)
			}
		}
	}
}

func TestRenderIndependentOfPriorFrame(t *testing.T) {
	// Render output is a full-frame state function: starting from a dirty
	// frame must give the same result as starting from a dark one.
	dirty := Frame{}
	dirty.Fill(Mari)

	params := solidParams(Yoshiko)
	for _, tag := range Tags() {
		p, _ := Lookup(tag)
		period := p.Period()
		for tick := 0; tick < period; tick++ {
			var clean Frame
			got := dirty
			p.Render(&clean, tick, period, params)
			p.Render(&got, tick, period, params)
			if clean != got {
				t.Errorf("%s: tick %d depends on prior frame contents", tag, tick)
			}
		}
	}
}

func TestSlowWipeProgression(t *testing.T) {
	p, _ := Lookup("slow")
	period := p.Period()
	params := solidParams(Kanan)

	heightAt := func(tick int) int {
		var f Frame
		p.Render(&f, tick, period, params)
		h := 0
		for y := 0; y < Rows; y++ {
			if f.At(0, y) != Off {
				h = y + 1
			}
		}
		return h
	}

	if got := heightAt(0); got != 1 {
		t.Errorf("height at tick 0 = %d, want 1", got)
	}
	if got := heightAt(16); got != Rows {
		t.Errorf("height at tick 16 = %d, want %d", got, Rows)
	}
	// Monotonic until full.
	prev := 0
	for tick := 0; tick < 17; tick++ {
		h := heightAt(tick)
		if h < prev {
			t.Errorf("height decreased at tick %d: %d -> %d", tick, prev, h)
		}
		prev = h
	}
	// Blanks on the final tick.
	if got := heightAt(period - 1); got != 0 {
		t.Errorf("height at final tick = %d, want 0", got)
	}
}

func TestHoldFlag(t *testing.T) {
	p, _ := Lookup("hold")
	period := p.Period()

	var f Frame
	p.Render(&f, period-1, period, solidParams(Dia))
	if f != (Frame{}) {
		t.Error("hold without flag: final tick should blank the frame")
	}

	params := solidParams(Dia)
	params.Hold = true
	p.Render(&f, period-1, period, params)
	if f.At(0, 0) != Dia {
		t.Error("hold with flag: final tick should stay lit")
	}
}

func TestChasePosition(t *testing.T) {
	p, _ := Lookup("chase")
	period := p.Period()
	params := solidParams(Honoka)

	for tick := 0; tick < period; tick++ {
		var f Frame
		p.Render(&f, tick, period, params)
		for i := 0; i < NumPixels; i++ {
			lit := f[i] != Off
			want := i%3 == tick%3
			if lit != want {
				t.Fatalf("tick %d pixel %d: lit = %v, want %v", tick, i, lit, want)
			}
		}
	}
}

func TestSpinReverse(t *testing.T) {
	p, _ := Lookup("spin")
	period := p.Period()

	lit := func(f *Frame, x int) []int {
		var rows []int
		for y := 0; y < Rows; y++ {
			if f.At(x, y) != Off {
				rows = append(rows, y)
			}
		}
		return rows
	}

	var fwd, rev Frame
	params := solidParams(Umi)
	p.Render(&fwd, 2, period, params)
	params.Reverse = true
	p.Render(&rev, 2, period, params)

	// Forward at tick 2: outer columns at rows {2, 6}, center mirrored at
	// {6, (6+4)%9=1}. Reverse swaps the roles.
	if got := lit(&fwd, 0); len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Errorf("forward left column lit rows = %v, want [2 6]", got)
	}
	if got := lit(&rev, 1); len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Errorf("reverse center column lit rows = %v, want [2 6]", got)
	}
}

func TestRainbowOverride(t *testing.T) {
	p, _ := Lookup("hold")
	params := Params{
		Colors:  [Columns]Cycle{{Dia}, {Dia}, {Dia}},
		Rainbow: Rainbow(false),
		Hold:    true,
	}
	var f Frame
	p.Render(&f, 0, p.Period(), params)
	for y := 0; y < Rows; y++ {
		want := AqoursRainbow[y]
		for x := 0; x < Columns; x++ {
			if f.At(x, y) != want {
				t.Errorf("pixel (%d,%d) = %v, want rainbow %v", x, y, f.At(x, y), want)
			}
		}
	}
}

func TestColorCycleRotation(t *testing.T) {
	p, _ := Lookup("hold")
	params := Params{
		Colors: [Columns]Cycle{GuiltyKiss, {Yoshiko}, {Yoshiko}},
		Hold:   true,
	}
	var f Frame
	p.Render(&f, 0, p.Period(), params)
	for y := 0; y < Rows; y++ {
		want := GuiltyKiss[y%len(GuiltyKiss)]
		if f.At(0, y) != want {
			t.Errorf("left column row %d = %v, want %v", y, f.At(0, y), want)
		}
	}
}
