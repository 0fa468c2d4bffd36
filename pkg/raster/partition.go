package raster

// Rows is the half-open row range [Start, End).
type Rows struct {
	Start, End int
}

func (r Rows) Len() int {
	return r.End - r.Start
}

// Partition splits [0, height) into n contiguous ranges in ascending order.
// Every range gets height/n rows and the first height%n ranges one more, so
// sizes differ by at most one. Ranges are empty when n > height.
// n below one is treated as one.
func Partition(height, n int) []Rows {
	if n < 1 {
		n = 1
	}
	if height < 0 {
		height = 0
	}

	size := height / n
	remainder := height % n

	parts := make([]Rows, n)
	start := 0
	for k := range parts {
		end := start + size
		if k < remainder {
			end++
		}
		parts[k] = Rows{Start: start, End: end}
		start = end
	}

	return parts
}
