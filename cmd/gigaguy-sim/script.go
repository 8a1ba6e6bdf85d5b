package main

import (
	"errors"
	"fmt"
	"os"

	cfg "github.com/automoto/gigaguy/config"
	"gopkg.in/yaml.v3"
)

var ErrBadScript = errors.New("bad input script")

// ScriptStep holds keys down for a number of frames. An empty key list is
// an idle stretch.
type ScriptStep struct {
	Keys   []string `yaml:"keys"`
	Frames int      `yaml:"frames"`
}

// Script is a list of steps played back in order.
type Script []ScriptStep

// Frames is the total length of the script.
func (s Script) Frames() int {
	n := 0
	for _, st := range s {
		n += st.Frames
	}
	return n
}

// Held returns the key set each step holds, in step order.
func (s Script) Held() ([][cfg.ActionCount]bool, error) {
	out := make([][cfg.ActionCount]bool, len(s))
	for i, st := range s {
		if st.Frames < 0 {
			return nil, fmt.Errorf("step %d: negative frame count %d: %w", i, st.Frames, ErrBadScript)
		}
		for _, name := range st.Keys {
			id, ok := cfg.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("step %d: unknown key %q: %w", i, name, ErrBadScript)
			}
			out[i][id] = true
		}
	}
	return out, nil
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	if _, err := s.Held(); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadScript(filename string) (Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", filename, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", filename, err)
	}
	return s, nil
}
