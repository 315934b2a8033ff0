package song

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lumibag/lumibag/internal/pattern"
	"github.com/lumibag/lumibag/internal/show"
)

// ErrInvalidSong indicates a script file that parsed as YAML but fails
// validation: an unknown pattern tag, an unknown color name, or a first
// entry with no tempo.
var ErrInvalidSong = errors.New("song: invalid song script")

// Song is one loaded song script: metadata for the playlist plus the
// resolved show script.
type Song struct {
	Title    string
	Filename string
	Script   show.Script
}

// colorSpec accepts the color forms a script may use for a column: a
// single member or unit name, or a list of member names forming a custom
// rotation. An absent field stays nil and inherits during playback.
type colorSpec struct {
	cycle pattern.Cycle
}

func (c *colorSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		if name == "" {
			return nil
		}
		cyc, ok := pattern.CycleByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidSong, name)
		}
		c.cycle = cyc
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return err
		}
		cyc := make(pattern.Cycle, 0, len(names))
		for _, name := range names {
			col, ok := pattern.ColorByName(name)
			if !ok {
				return fmt.Errorf("%w: unknown color %q", ErrInvalidSong, name)
			}
			cyc = append(cyc, col)
		}
		c.cycle = cyc
	default:
		return fmt.Errorf("%w: color must be a name or a list of names", ErrInvalidSong)
	}
	return nil
}

type entryFile struct {
	Type   string    `yaml:"type"`
	BPM    float64   `yaml:"bpm"`
	Left   colorSpec `yaml:"left"`
	Center colorSpec `yaml:"center"`
	Right  colorSpec `yaml:"right"`
	Count  int       `yaml:"count"`
	Kwargs struct {
		Rainbow bool `yaml:"rainbow"`
		Reverse bool `yaml:"reverse"`
		Hold    bool `yaml:"hold"`
	} `yaml:"kwargs"`
}

type songFile struct {
	Title         string      `yaml:"title"`
	Filename      string      `yaml:"filename"`
	InitialOffset float64     `yaml:"initial_offset"`
	Patterns      []entryFile `yaml:"patterns"`
}

// Load reads and validates one song script file.
func Load(path string) (*Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("song: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("song: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a song script. Pattern tags and color names
// are resolved here so a bad script fails at load time, not mid-show.
func Parse(data []byte) (*Song, error) {
	var file songFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("song: parse: %w", err)
	}
	if len(file.Patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns", ErrInvalidSong)
	}
	if file.Patterns[0].BPM <= 0 {
		return nil, fmt.Errorf("%w: first pattern has no bpm", ErrInvalidSong)
	}

	steps := make([]show.Step, 0, len(file.Patterns))
	for i, entry := range file.Patterns {
		if _, err := pattern.Lookup(entry.Type); err != nil {
			return nil, fmt.Errorf("%w: pattern %d: %v", ErrInvalidSong, i, err)
		}
		params := pattern.Params{
			Colors:  [pattern.Columns]pattern.Cycle{entry.Left.cycle, entry.Center.cycle, entry.Right.cycle},
			Reverse: entry.Kwargs.Reverse,
			Hold:    entry.Kwargs.Hold,
		}
		if entry.Kwargs.Rainbow {
			params.Rainbow = pattern.Rainbow(entry.Kwargs.Reverse)
		}
		steps = append(steps, show.Step{
			Tag:    entry.Type,
			BPM:    entry.BPM,
			Count:  entry.Count,
			Params: params,
		})
	}

	return &Song{
		Title:    file.Title,
		Filename: file.Filename,
		Script: show.Script{
			InitialOffset: time.Duration(file.InitialOffset * float64(time.Second)),
			Steps:         steps,
		},
	}, nil
}
