package pdf

// Result carries a transformed document together with the size metadata the
// API reports back to clients.
type Result struct {
	Data           []byte
	OriginalSize   int64
	CompressedSize int64
}

// ReductionPercent reports how much smaller the output is relative to the
// input. Negative when compression grew the file.
func (r *Result) ReductionPercent() float64 {
	if r.OriginalSize <= 0 {
		return 0
	}
	return (float64(r.OriginalSize) - float64(r.CompressedSize)) / float64(r.OriginalSize) * 100
}
