package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Disc is a cheese of a given size. Two discs are equal when their sizes are.
type Disc struct {
	size int
}

func NewDisc(size int) Disc { return Disc{size: size} }

func (d Disc) Size() int { return d.size }

// Equal reports whether both discs have the same size.
func (d Disc) Equal(o Disc) bool { return d.size == o.size }

func (d Disc) String() string { return "Disc(" + strconv.Itoa(d.size) + ")" }

// Move moves the top disc of stool From onto stool To.
// Encoded as a two element list [from, to]; the mapping form {from, to} is accepted on input.
type Move struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

func (m Move) String() string { return fmt.Sprintf("(%d,%d)", m.From, m.To) }

func (m Move) MarshalJSON() ([]byte, error) { return json.Marshal([2]int{m.From, m.To}) }

func (m *Move) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err == nil {
		return m.fromPair(pair)
	}
	var obj struct {
		From *int `json:"from"`
		To   *int `json:"to"`
	}
	if err := json.Unmarshal(b, &obj); err != nil || obj.From == nil || obj.To == nil {
		return fmt.Errorf("%w: move %s: want [from, to] or {from, to}", ErrInvalidInput, string(b))
	}
	m.From, m.To = *obj.From, *obj.To
	return nil
}

func (m Move) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{m.From, m.To} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return n, nil
}

func (m *Move) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := n.Decode(&pair); err != nil {
			return fmt.Errorf("%w: move at line %d: %v", ErrInvalidInput, n.Line, err)
		}
		return m.fromPair(pair)
	case yaml.MappingNode:
		var obj struct {
			From *int `yaml:"from"`
			To   *int `yaml:"to"`
		}
		if err := n.Decode(&obj); err != nil || obj.From == nil || obj.To == nil {
			return fmt.Errorf("%w: move at line %d: want from and to", ErrInvalidInput, n.Line)
		}
		m.From, m.To = *obj.From, *obj.To
		return nil
	default:
		return fmt.Errorf("%w: move at line %d: want [from, to]", ErrInvalidInput, n.Line)
	}
}

func (m *Move) fromPair(pair []int) error {
	if len(pair) != 2 {
		return fmt.Errorf("%w: move %v: want exactly two stool indices", ErrInvalidInput, pair)
	}
	m.From, m.To = pair[0], pair[1]
	return nil
}

// ParseMove reads "from:to" or "from,to". Exactly one separator is allowed.
func ParseMove(s string) (Move, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	head, tail, ok := strings.Cut(s, sep)
	if !ok || strings.ContainsAny(tail, ":,") {
		return Move{}, fmt.Errorf("%w: move %q: want FROM:TO", ErrInvalidInput, s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q: bad source stool", ErrInvalidInput, s)
	}
	to, err := strconv.Atoi(strings.TrimSpace(tail))
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q: bad destination stool", ErrInvalidInput, s)
	}
	return Move{From: from, To: to}, nil
}

func ParseMoves(args []string) ([]Move, error) {
	out := make([]Move, 0, len(args))
	for _, a := range args {
		m, err := ParseMove(a)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Solution is a candidate move list for a standard game, as read from a solution file.
type Solution struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Stools int    `json:"stools" yaml:"stools"`
	Discs  int    `json:"discs" yaml:"discs"`
	Moves  []Move `json:"moves" yaml:"moves"`
	// Optional user metadata
	Author string `json:"author,omitempty" yaml:"author,omitempty"`
	Notes  string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SolutionMeta is a lightweight listing entry.
type SolutionMeta struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Stools int    `json:"stools"`
	Discs  int    `json:"discs"`
	Moves  int    `json:"moves"`
}

// Verdict is the outcome of replaying a Solution.
type Verdict struct {
	Name  string
	Legal bool
	// Solved is true when every disc ended up on the last stool.
	Solved    bool
	Moves     int
	FailedAt  int // index of the rejected move, -1 when Legal
	Violation MoveViolation
	Reason    string
	// Layout is the reached position, set when Legal. Target is the goal
	// position, set only when a legal solution falls short of it.
	Layout string
	Target string
}
