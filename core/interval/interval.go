// core/interval/interval.go
package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Interval is a closed residue range, 1-indexed on both ends.
type Interval struct {
	Start int
	End   int
}

// Length returns the number of residues covered.
func (iv Interval) Length() int { return iv.End - iv.Start + 1 }

// Contains reports whether pos falls inside the interval.
func (iv Interval) Contains(pos int) bool { return pos >= iv.Start && pos <= iv.End }

// Overlap returns the number of positions shared with o (0 if disjoint).
func (iv Interval) Overlap(o Interval) int {
	lo := iv.Start
	if o.Start > lo {
		lo = o.Start
	}
	hi := iv.End
	if o.End < hi {
		hi = o.End
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func (iv Interval) String() string { return fmt.Sprintf("%d-%d", iv.Start, iv.End) }

// Set is an ordered list of disjoint intervals, ascending by Start.
type Set []Interval

// Parse reads the wire form "start-end[,start-end...]" (1-indexed, inclusive).
// It rejects malformed segments, inverted ranges, and segments that are not
// ascending and disjoint.
func Parse(s string) (Set, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty range")
	}
	var set Set
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		i := strings.IndexByte(seg, '-')
		if i <= 0 || i == len(seg)-1 {
			return nil, fmt.Errorf("malformed segment %q", seg)
		}
		start, err := strconv.Atoi(seg[:i])
		if err != nil {
			return nil, fmt.Errorf("malformed segment %q", seg)
		}
		end, err := strconv.Atoi(seg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("malformed segment %q", seg)
		}
		if start < 1 {
			return nil, fmt.Errorf("segment %q starts before position 1", seg)
		}
		if end < start {
			return nil, fmt.Errorf("inverted segment %q", seg)
		}
		if n := len(set); n > 0 && start <= set[n-1].End {
			return nil, fmt.Errorf("segment %q overlaps or precedes previous segment", seg)
		}
		set = append(set, Interval{Start: start, End: end})
	}
	return set, nil
}

// Length returns the total residue count across all segments.
func (s Set) Length() int {
	n := 0
	for _, iv := range s {
		n += iv.Length()
	}
	return n
}

// Min returns the first covered position (0 for an empty set).
func (s Set) Min() int {
	if len(s) == 0 {
		return 0
	}
	return s[0].Start
}

// Max returns the last covered position (0 for an empty set).
func (s Set) Max() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].End
}

// Positions flattens the set into its covered positions, ascending.
func (s Set) Positions() []int {
	out := make([]int, 0, s.Length())
	for _, iv := range s {
		for p := iv.Start; p <= iv.End; p++ {
			out = append(out, p)
		}
	}
	return out
}

func (s Set) String() string {
	parts := make([]string, len(s))
	for i, iv := range s {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ",")
}

// FromPositions groups ascending positions into maximal disjoint intervals.
// The input must already be sorted ascending with no duplicates.
func FromPositions(ps []int) Set {
	if len(ps) == 0 {
		return nil
	}
	var set Set
	cur := Interval{Start: ps[0], End: ps[0]}
	for _, p := range ps[1:] {
		if p == cur.End+1 {
			cur.End = p
			continue
		}
		set = append(set, cur)
		cur = Interval{Start: p, End: p}
	}
	return append(set, cur)
}

// Complement returns the positions of [1,n] not covered by s, as maximal
// disjoint intervals. s must be ordered and disjoint.
func Complement(s Set, n int) Set {
	if n < 1 {
		return nil
	}
	var out Set
	next := 1
	for _, iv := range s {
		if iv.Start > next {
			out = append(out, Interval{Start: next, End: iv.Start - 1})
		}
		if iv.End+1 > next {
			next = iv.End + 1
		}
	}
	if next <= n {
		out = append(out, Interval{Start: next, End: n})
	}
	return out
}
