package buffer

// Range is a half-open selection in grapheme offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// NormalizeRange orders r so that Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	n := NormalizeRange(r)
	return n.End - n.Start
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampOffset clamps off into [0, length].
func ClampOffset(off, length int) int {
	if length < 0 {
		length = 0
	}
	return clampInt(off, 0, length)
}

func ClampRange(r Range, length int) Range {
	return Range{
		Start: ClampOffset(r.Start, length),
		End:   ClampOffset(r.End, length),
	}
}
