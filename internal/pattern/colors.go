package pattern

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blade color values. These approximate the original Kingblade penlight
// colors when rendered on WS2812 LEDs.
var (
	// Aqours members
	Chika    = Color{0xff, 0x4d, 0x00} // Mikan orange
	Riko     = Color{0xff, 0x4b, 0x81} // Sakura pink
	Kanan    = Color{0x00, 0xa8, 0x2f} // Emerald green
	Dia      = Color{0xff, 0x00, 0x00} // Red
	You      = Color{0x00, 0x7c, 0xff} // Light blue
	Yoshiko  = Color{0xff, 0xff, 0xff} // White
	Hanamaru = Color{0x91, 0xb9, 0x00} // Yellow
	Mari     = Color{0x37, 0x00, 0xff} // Violet
	Ruby     = Color{0xff, 0x00, 0x50} // Pink

	// Saint Snow
	Sera = Color{0x00, 0xa2, 0xbe} // Sky blue
	Leah = Color{0x64, 0x5a, 0x5a} // Pure white

	// mu's members
	Honoka = Color{0xff, 0x23, 0x00} // Orange
	Nozomi = Color{0xb3, 0x00, 0xc8} // Purple
	Rin    = Color{0xff, 0xff, 0x00} // Yellow
	Hanayo = Color{0x00, 0xff, 0x00} // Green
	Nico   = Color{0xff, 0x00, 0x4b} // Pink
	Kotori = Color{0xff, 0xff, 0xff} // White
	Umi    = Color{0x00, 0x00, 0xff} // Blue
	Eli    = Color{0x00, 0xff, 0xff} // Light blue
	Maki   = Color{0xff, 0x00, 0x01} // Red
)

// Cycle is a per-position color rotation table. A single-color cycle is a
// solid color; longer cycles rotate per row.
type Cycle []Color

// At returns the cycle entry for row y, wrapping around the table.
func (c Cycle) At(y int) Color {
	if len(c) == 0 {
		return Off
	}
	return c[y%len(c)]
}

// Member color sequences in official penlight order.
var (
	Aqours = Cycle{Chika, Riko, Kanan, Dia, You, Yoshiko, Hanamaru, Mari, Ruby}

	AqoursFirstYears  = Cycle{Hanamaru, Ruby, Yoshiko}
	AqoursSecondYears = Cycle{Chika, You, Riko}
	AqoursThirdYears  = Cycle{Dia, Kanan, Mari}
	GuiltyKiss        = Cycle{Riko, Yoshiko, Mari}
	CYaRon            = Cycle{Chika, You, Ruby}
	Azalea            = Cycle{Hanamaru, Kanan, Dia}

	SaintSnow = Cycle{Sera, Leah}

	Muse = Cycle{Honoka, Nozomi, Rin, Hanayo, Nico, Kotori, Umi, Eli, Maki}

	MuseFirstYears  = Cycle{Maki, Rin, Hanayo}
	MuseSecondYears = Cycle{Umi, Honoka, Kotori}
	MuseThirdYears  = Cycle{Nozomi, Nico, Eli}
	BiBi            = Cycle{Maki, Nico, Eli}
	LilyWhite       = Cycle{Umi, Nozomi, Rin}
	Printemps       = Cycle{Kotori, Honoka, Hanayo}
)

// AqoursRainbow is the 9-color rainbow used by the rainbow render flag,
// ordered 2nd years, 1st years, 3rd years.
var AqoursRainbow = Cycle{Chika, You, Riko, Hanamaru, Ruby, Yoshiko, Dia, Kanan, Mari}

// Rainbow returns the 9-color rainbow cycle, optionally reversed.
func Rainbow(reverse bool) Cycle {
	if !reverse {
		return AqoursRainbow
	}
	out := make(Cycle, len(AqoursRainbow))
	for i, c := range AqoursRainbow {
		out[len(out)-1-i] = c
	}
	return out
}

var memberColors = map[string]Color{
	"none":     Off,
	"chika":    Chika,
	"riko":     Riko,
	"kanan":    Kanan,
	"dia":      Dia,
	"you":      You,
	"yoshiko":  Yoshiko,
	"hanamaru": Hanamaru,
	"mari":     Mari,
	"ruby":     Ruby,
	"sera":     Sera,
	"leah":     Leah,
	"honoka":   Honoka,
	"nozomi":   Nozomi,
	"rin":      Rin,
	"hanayo":   Hanayo,
	"nico":     Nico,
	"kotori":   Kotori,
	"umi":      Umi,
	"eli":      Eli,
	"maki":     Maki,
}

var unitCycles = map[string]Cycle{
	"aqours 1st years": AqoursFirstYears,
	"aqours 2nd years": AqoursSecondYears,
	"aqours 3rd years": AqoursThirdYears,
	"guilty kiss":      GuiltyKiss,
	"cyaron!":          CYaRon,
	"azalea":           Azalea,
	"aqours rainbow":   AqoursRainbow,
	"saint snow":       SaintSnow,
	"mu's 1st years":   MuseFirstYears,
	"mu's 2nd years":   MuseSecondYears,
	"mu's 3rd years":   MuseThirdYears,
	"bibi":             BiBi,
	"lily white":       LilyWhite,
	"printemps":        Printemps,
}

// ColorByName resolves a single member color by case-insensitive name.
func ColorByName(name string) (Color, bool) {
	c, ok := memberColors[strings.ToLower(name)]
	return c, ok
}

// CycleByName resolves a color rotation by case-insensitive name: either a
// unit name ("Guilty Kiss", "Aqours Rainbow") or a single member color.
func CycleByName(name string) (Cycle, bool) {
	lower := strings.ToLower(name)
	if cyc, ok := unitCycles[lower]; ok {
		return cyc, true
	}
	if c, ok := memberColors[lower]; ok {
		return Cycle{c}, true
	}
	return nil, false
}

// ColorNames returns the display names of every selectable color and unit,
// members first, in penlight order.
func ColorNames() []string {
	return []string{
		"None",
		"Chika", "Riko", "Kanan", "Dia", "You", "Yoshiko", "Hanamaru", "Mari", "Ruby",
		"Aqours 1st Years", "Aqours 2nd Years", "Aqours 3rd Years",
		"Guilty Kiss", "CYaRon!", "AZALEA", "Aqours Rainbow",
		"Sera", "Leah", "Saint Snow",
		"Honoka", "Nozomi", "Rin", "Hanayo", "Nico", "Kotori", "Umi", "Eli", "Maki",
		"Mu's 1st Years", "Mu's 2nd Years", "Mu's 3rd Years",
		"BiBi", "Lily White", "Printemps",
	}
}

// Wheel generates rainbow colors across positions 0-255, used by the test
// wipe animation.
func Wheel(pos uint8) Color {
	h := float64(pos) / 256 * 360
	r, g, b := colorful.Hsv(h, 1, 1).RGB255()
	return Color{r, g, b}
}
