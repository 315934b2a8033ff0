package pattern

// The movement catalog. Each entry is the tick-state rendition of one
// penlight movement: a pure function from the movement-local tick to the
// complete frame. Movements that animated within a tick in earlier
// firmware are folded to tick boundaries here.

// renderWipe lights rows [0, height) in every column and darkens the rest.
func renderWipe(f *Frame, p Params, height int) {
	for x := 0; x < Columns; x++ {
		for y := 0; y < Rows; y++ {
			if y < height {
				f.Set(x, y, p.ColorAt(x, y))
			} else {
				f.Set(x, y, Off)
			}
		}
	}
}

// renderColumns lights rows [lo, hi) of each enabled column; everything
// else is darkened. A nil span disables the column.
type span struct{ lo, hi int }

func renderColumns(f *Frame, p Params, spans [Columns]*span) {
	for x := 0; x < Columns; x++ {
		for y := 0; y < Rows; y++ {
			if s := spans[x]; s != nil && y >= s.lo && y < s.hi {
				f.Set(x, y, p.ColorAt(x, y))
			} else {
				f.Set(x, y, Off)
			}
		}
	}
}

// renderChase lights every third pixel, walking one step per tick, in the
// enabled columns.
func renderChase(f *Frame, tick int, p Params, left, center, right bool) {
	enabled := [Columns]bool{left, center, right}
	q := tick % 3
	f.Clear()
	for i := q; i < NumPixels; i += 3 {
		x := i / Rows
		y := i % Rows
		if enabled[x] {
			f.Set(x, y, p.ColorAt(x, y))
		}
	}
}

func fullColumn() *span { return &span{0, Rows} }

func rowSpan(lo, hi int) *span { return &span{lo, hi} }

func init() {
	Register(Pattern{Tag: "slow", Beats: 4, Render: renderSlow})
	Register(Pattern{Tag: "slow3", Beats: 3, Render: renderSlow3})
	Register(Pattern{Tag: "hold", Beats: 1, Render: renderHold})
	Register(Pattern{Tag: "normal", Beats: 2, Render: renderNormal})
	Register(Pattern{Tag: "normalodd", Beats: 1, Render: renderNormalOdd})
	Register(Pattern{Tag: "normaleven", Beats: 1, Render: renderNormalEven})
	Register(Pattern{Tag: "hai", Beats: 2, Render: renderHai})
	Register(Pattern{Tag: "senohai", Beats: 10, Render: renderSenoHai})
	Register(Pattern{Tag: "ohhai", Beats: 4, Render: renderOhHai})
	Register(Pattern{Tag: "flash", Beats: 1, Render: renderFlash})
	Register(Pattern{Tag: "flash2", Beats: 1, Render: renderFlash2})
	Register(Pattern{Tag: "fufu", Beats: 1, Render: renderFufu})
	Register(Pattern{Tag: "chase", Beats: 1, Render: renderChaseAll})
	Register(Pattern{Tag: "spin", Beats: 1, Render: renderSpin})
	Register(Pattern{Tag: "aozorahora", Beats: 8, Render: renderAozoraHora})
	Register(Pattern{Tag: "aozoraashita", Beats: 16, Render: renderAozoraAshita})
	Register(Pattern{Tag: "aozoramasshigura", Beats: 8, Render: renderAozoraMasshigura})
	Register(Pattern{Tag: "hptintrofu", Beats: 4, Render: renderHPTIntroFu})
	Register(Pattern{Tag: "hptsyncofu", Beats: 4, Render: renderHPTSyncoFu})
	Register(Pattern{Tag: "hptfufufu", Beats: 2, Render: renderHPTFufufu})
	Register(Pattern{Tag: "koinifufu", Beats: 1, Render: renderKoiNiFufu})
	Register(Pattern{Tag: "koinitottemo", Beats: 2, Render: renderKoiNiTottemo})
	Register(Pattern{Tag: "koiniopen", Beats: 1, Render: renderKoiNiOpen})
	Register(Pattern{Tag: "atpseichou", Beats: 6, Render: renderATPSeichou})
	Register(Pattern{Tag: "atpfighting", Beats: 4, Render: renderATPFighting})
	Register(Pattern{Tag: "yumefufu", Beats: 2, Render: renderYumeFufu})
	Register(Pattern{Tag: "yumefufufu", Beats: 5, Render: renderYumeFufufu})
	Register(Pattern{Tag: "jimoai", Beats: 4, Render: renderJimoAi})
	Register(Pattern{Tag: "hajimariyamenai", Beats: 4, Render: renderHajimariYamenai})
	Register(Pattern{Tag: "hajimarigoeast", Beats: 4, Render: renderHajimariGoEast})
}

// Slow 4-beat wipe up to full height, blanking on the final tick.
func renderSlow(f *Frame, tick, period int, p Params) {
	if tick == period-1 {
		f.Clear()
		return
	}
	height := tick/2 + 1
	if height > Rows {
		height = Rows
	}
	renderWipe(f, p, height)
}

// 3-beat variant of the slow wipe; the hold flag keeps the final frame.
func renderSlow3(f *Frame, tick, period int, p Params) {
	if tick == period-1 && !p.Hold {
		f.Clear()
		return
	}
	height := tick/2 + 1
	if height > Rows {
		height = Rows
	}
	renderWipe(f, p, height)
}

// 1-beat full-height hold, blanking on the final tick unless held.
func renderHold(f *Frame, tick, period int, p Params) {
	if tick == period-1 && !p.Hold {
		f.Clear()
		return
	}
	renderWipe(f, p, Rows)
}

// Wave height per tick of the default movement: beat 1 swings at half
// height, beat 2 at full height. The looping tail (ticks 11-15) folds the
// full wave back down toward the next repetition.
var normalHeights = [16]int{5, 5, 5, 4, 1, 2, 5, 8, 9, 9, 9, 8, 5, 2, 1, 4}

func renderNormal(f *Frame, tick, period int, p Params) {
	height := normalHeights[tick]
	if !p.Loop && tick >= 11 {
		// Final movement of a sequence stays at full height.
		height = Rows
	}
	renderWipe(f, p, height)
}

func renderNormalOdd(f *Frame, tick, period int, p Params) {
	renderWipe(f, p, normalHeights[tick])
}

func renderNormalEven(f *Frame, tick, period int, p Params) {
	renderWipe(f, p, normalHeights[8+tick])
}

// Off for one beat, chase for one beat.
func renderHai(f *Frame, tick, period int, p Params) {
	if tick < TicksPerBeat {
		f.Clear()
		return
	}
	renderChase(f, tick, p, true, true, true)
}

// "Se-no" call over 10 beats: two full-height holds, then alternating
// chase bursts walking across the columns.
func renderSenoHai(f *Frame, tick, period int, p Params) {
	switch {
	case tick < 6, tick >= 8 && tick < 14:
		renderWipe(f, p, Rows)
	case tick >= 16 && tick < 24, tick >= 32 && tick < 40, tick >= 72:
		renderChase(f, tick, p, true, true, true)
	case tick >= 48 && tick < 56:
		renderChase(f, tick, p, true, false, false)
	case tick >= 56 && tick < 64:
		renderChase(f, tick, p, false, true, false)
	case tick >= 64 && tick < 72:
		renderChase(f, tick, p, false, false, true)
	default:
		f.Clear()
	}
}

// Slow 3-beat wipe, then a chase on beat 4.
func renderOhHai(f *Frame, tick, period int, p Params) {
	if tick >= 24 {
		renderChase(f, tick, p, true, true, true)
		return
	}
	height := tick/2 + 1
	if height > Rows {
		height = Rows
	}
	renderWipe(f, p, height)
}

// Single-beat flash.
func renderFlash(f *Frame, tick, period int, p Params) {
	if tick == period-1 {
		f.Clear()
		return
	}
	renderWipe(f, p, Rows)
}

// Double flash on the 1/8th down and up beats.
func renderFlash2(f *Frame, tick, period int, p Params) {
	if tick == 3 || tick == 7 {
		f.Clear()
		return
	}
	renderWipe(f, p, Rows)
}

// Double flash on the first two 1/16th notes.
func renderFufu(f *Frame, tick, period int, p Params) {
	if tick == 0 || (tick >= 3 && tick < 7) {
		renderWipe(f, p, Rows)
		return
	}
	f.Clear()
}

func renderChaseAll(f *Frame, tick, period int, p Params) {
	renderChase(f, tick, p, true, true, true)
}

// Two lit rows per column spinning opposite directions: outer columns run
// one way, the center column the other.
func renderSpin(f *Frame, tick, period int, p Params) {
	for x := 0; x < Columns; x++ {
		n := tick
		if (x == 1) != p.Reverse {
			n = Rows - 1 - tick
		}
		for y := 0; y < Rows; y++ {
			if y == n || y == (n+4)%Rows {
				f.Set(x, y, p.ColorAt(x, y))
			} else {
				f.Set(x, y, Off)
			}
		}
	}
}

// "Hora! issho ni ne!": two flashes, a rest, then a four-step climb to
// full height.
func renderAozoraHora(f *Frame, tick, period int, p Params) {
	switch {
	case tick < 3, tick >= 4 && tick < 7:
		renderWipe(f, p, Rows)
	case tick >= 16 && tick < 28:
		renderWipe(f, p, 2)
	case tick >= 28 && tick < 40:
		renderWipe(f, p, 4)
	case tick >= 40 && tick < 48:
		renderWipe(f, p, 6)
	case tick >= 48:
		renderWipe(f, p, Rows)
	default:
		f.Clear()
	}
}

// "ashita e... seishun masshigura!": a wipe that travels right, left,
// center, each new column growing while the previous drains from the top,
// closing with a center chase.
func renderAozoraAshita(f *Frame, tick, period int, p Params) {
	if tick >= 96 {
		renderChase(f, tick, p, false, true, false)
		return
	}
	step := tick % 32 / 2 // 0..15 within each phase
	grow := func(s int) *span {
		h := s + 1
		if h > Rows {
			h = Rows
		}
		return rowSpan(0, h)
	}
	drain := func(s int) *span {
		top := Rows - 1 - s
		if top <= 0 {
			return nil
		}
		return rowSpan(0, top)
	}
	var spans [Columns]*span
	switch {
	case tick < 32:
		spans = [Columns]*span{nil, nil, grow(step)}
	case tick < 64:
		spans = [Columns]*span{grow(step), nil, drain(step)}
	default:
		spans = [Columns]*span{drain(step), grow(step), nil}
	}
	renderColumns(f, p, spans)
}

// Final "...masshigura": center column chases at full height while the
// outer columns chase inside a rising ceiling.
func renderAozoraMasshigura(f *Frame, tick, period int, p Params) {
	height := tick / 2
	if height > Rows-1 {
		height = Rows - 1
	}
	q := tick % 3
	f.Clear()
	for i := q; i < NumPixels; i += 3 {
		x := i / Rows
		y := i % Rows
		if x == 1 || y <= height {
			f.Set(x, y, p.ColorAt(x, y))
		}
	}
}

// Intro "--|-fu|-fu|-fu": columns light left to right on the off-beats.
func renderHPTIntroFu(f *Frame, tick, period int, p Params) {
	var spans [Columns]*span
	switch {
	case tick >= 28:
		spans = [Columns]*span{fullColumn(), fullColumn(), fullColumn()}
	case tick >= 20:
		spans = [Columns]*span{fullColumn(), fullColumn(), nil}
	case tick >= 12:
		spans = [Columns]*span{fullColumn(), nil, nil}
	}
	renderColumns(f, p, spans)
}

// Syncopated "fu-|-fu|-fu": all columns climb in three-row steps.
func renderHPTSyncoFu(f *Frame, tick, period int, p Params) {
	switch {
	case tick >= 20:
		renderWipe(f, p, 9)
	case tick >= 12:
		renderWipe(f, p, 6)
	default:
		renderWipe(f, p, 3)
	}
}

// "|fufu|fu-|": columns light left to right on consecutive 1/16ths.
func renderHPTFufufu(f *Frame, tick, period int, p Params) {
	var spans [Columns]*span
	switch {
	case tick >= 8:
		spans = [Columns]*span{fullColumn(), fullColumn(), fullColumn()}
	case tick >= 4:
		spans = [Columns]*span{fullColumn(), fullColumn(), nil}
	default:
		spans = [Columns]*span{fullColumn(), nil, nil}
	}
	renderColumns(f, p, spans)
}

// "|fufu|": outer columns (center when reversed) then everything.
func renderKoiNiFufu(f *Frame, tick, period int, p Params) {
	if tick >= 4 {
		renderWipe(f, p, Rows)
		return
	}
	var spans [Columns]*span
	if p.Reverse {
		spans = [Columns]*span{nil, fullColumn(), nil}
	} else {
		spans = [Columns]*span{fullColumn(), nil, fullColumn()}
	}
	renderColumns(f, p, spans)
}

// "tottemo": three-row climb, hold, blank on the final tick.
func renderKoiNiTottemo(f *Frame, tick, period int, p Params) {
	switch {
	case tick == period-1:
		f.Clear()
	case tick >= 6:
		renderWipe(f, p, Rows)
	case tick >= 4:
		renderWipe(f, p, 6)
	default:
		renderWipe(f, p, 3)
	}
}

// "OPEN!/WELCOME": syncopated double flash.
func renderKoiNiOpen(f *Frame, tick, period int, p Params) {
	if tick == 4 {
		f.Clear()
		return
	}
	renderWipe(f, p, Rows)
}

// "Seichou shitta ne": left, right, then the center in three-row steps.
func renderATPSeichou(f *Frame, tick, period int, p Params) {
	var spans [Columns]*span
	switch {
	case tick < 4, tick >= 40:
		// rest
	case tick < 12:
		spans = [Columns]*span{fullColumn(), nil, nil}
	case tick < 20:
		spans = [Columns]*span{fullColumn(), nil, fullColumn()}
	case tick < 24:
		spans = [Columns]*span{fullColumn(), rowSpan(0, 3), fullColumn()}
	case tick < 28:
		spans = [Columns]*span{fullColumn(), rowSpan(0, 6), fullColumn()}
	default:
		spans = [Columns]*span{fullColumn(), fullColumn(), fullColumn()}
	}
	renderColumns(f, p, spans)
}

// "Fighting fighting!": left, right, then the center in two halves.
func renderATPFighting(f *Frame, tick, period int, p Params) {
	var spans [Columns]*span
	switch {
	case tick == period-1:
		// rest
	case tick < 6:
		spans = [Columns]*span{fullColumn(), nil, nil}
	case tick < 12:
		spans = [Columns]*span{fullColumn(), nil, fullColumn()}
	case tick < 20:
		spans = [Columns]*span{fullColumn(), rowSpan(0, 5), fullColumn()}
	default:
		spans = [Columns]*span{fullColumn(), fullColumn(), fullColumn()}
	}
	renderColumns(f, p, spans)
}

// Chorus "fufu": two full flashes with rests between.
func renderYumeFufu(f *Frame, tick, period int, p Params) {
	if (tick >= 4 && tick < 7) || (tick >= 8 && tick < 15) {
		renderWipe(f, p, Rows)
		return
	}
	f.Clear()
}

// Break "-fu|-fu|-fu" bouncing left, right, left in chase bursts.
func renderYumeFufufu(f *Frame, tick, period int, p Params) {
	switch {
	case tick >= 4 && tick < 12, tick >= 20 && tick < period-1:
		renderChase(f, tick, p, true, false, false)
	case tick >= 12 && tick < 20:
		renderChase(f, tick, p, false, false, true)
	default:
		f.Clear()
	}
}

// Opposing half-height diagonals swapping every two beats around a full
// center column.
func renderJimoAi(f *Frame, tick, period int, p Params) {
	var spans [Columns]*span
	if tick < 16 {
		spans = [Columns]*span{rowSpan(0, 5), fullColumn(), rowSpan(4, Rows)}
	} else {
		spans = [Columns]*span{rowSpan(4, Rows), fullColumn(), rowSpan(0, 5)}
	}
	renderColumns(f, p, spans)
}

// "-ya|-me|nai-|yo-": three-row climb then a chase.
func renderHajimariYamenai(f *Frame, tick, period int, p Params) {
	switch {
	case tick < 4:
		f.Clear()
	case tick < 12:
		renderWipe(f, p, 3)
	case tick < 16:
		renderWipe(f, p, 6)
	case tick < 24:
		renderWipe(f, p, Rows)
	default:
		renderChase(f, tick, p, true, true, true)
	}
}

// "go-|-east|--": long flashes with rests.
func renderHajimariGoEast(f *Frame, tick, period int, p Params) {
	if (tick >= 8 && tick < 12) || (tick >= 20 && tick < 24) {
		f.Clear()
		return
	}
	renderWipe(f, p, Rows)
}
