package product

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
)

// Manifest is a bill of materials: how many of each part, in first-seen order.
// It shares no interface with Product; a recipe can still produce either.
type Manifest struct {
	order  []string
	counts map[string]int
}

// NewManifest tallies parts into a Manifest.
func NewManifest(parts ...string) *Manifest {
	m := &Manifest{counts: make(map[string]int, len(parts))}
	for _, part := range parts {
		if _, ok := m.counts[part]; !ok {
			m.order = append(m.order, part)
		}
		m.counts[part]++
	}
	return m
}

// Quantity returns how many times part was added, zero if never.
func (m *Manifest) Quantity(part string) int {
	return m.counts[part]
}

// Parts returns the distinct parts in first-seen order.
func (m *Manifest) Parts() []string {
	return slices.Clone(m.order)
}

// Len returns the number of distinct parts.
func (m *Manifest) Len() int {
	return len(m.order)
}

// Total returns the number of parts including repeats.
func (m *Manifest) Total() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}

func (m *Manifest) String() string {
	lines := make([]string, 0, len(m.order))
	for _, part := range m.order {
		lines = append(lines, part+" x"+strconv.Itoa(m.counts[part]))
	}
	return "Manifest: " + strings.Join(lines, ", ")
}

func (m *Manifest) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(m.view())
}

func (m *Manifest) MarshalYAML() (any, error) {
	return m.view(), nil
}

type manifestLine struct {
	Part     string `json:"part" yaml:"part"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

func (m *Manifest) view() []manifestLine {
	lines := make([]manifestLine, 0, len(m.order))
	for _, part := range m.order {
		lines = append(lines, manifestLine{Part: part, Quantity: m.counts[part]})
	}
	return lines
}
