package oldfmt

// rangeLoop walks over a list of end indices, giving back the window
// [begin, end) each time. The first window starts at the begin given
// to newRangeLoop. To go round again, make a new one.
type rangeLoop struct {
	ends  []int
	begin int
	end   int
	size  int
}

func newRangeLoop(ends []int, begin int) *rangeLoop {
	return &rangeLoop{ends: ends, end: begin}
}

// next moves to the next window. It returns false when there are no more.
func (r *rangeLoop) next() bool {
	if len(r.ends) == 0 {
		return false
	}
	r.begin = r.end
	r.end, r.ends = r.ends[0], r.ends[1:]
	r.size = r.end - r.begin
	return true
}
