package transforms

// EscapeRadiusSquared is the squared magnitude past which an orbit is known to diverge.
const EscapeRadiusSquared = 4.0

// Mandelbrot is the escape-time evaluator for the recurrence z = z*z + c.
type Mandelbrot struct {
	// MaxIterations caps the orbit length. Points whose orbits survive this many
	// steps are treated as members of the set.
	MaxIterations int
}

func (m Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

// Escape counts the steps taken by the orbit of c, starting from zero, before
// |z|^2 reaches EscapeRadiusSquared. The result lies in [0, MaxIterations];
// MaxIterations means the orbit stayed bounded.
func (m Mandelbrot) Escape(c complex128) int {
	z := complex(0, 0)

	i := 0
	for ; i < m.MaxIterations; i++ {
		if real(z)*real(z)+imag(z)*imag(z) >= EscapeRadiusSquared {
			break
		}
		z = m.Next(z, c)
	}

	return i
}

// Inside reports whether an Escape result marks a bounded orbit.
func (m Mandelbrot) Inside(count int) bool {
	return count >= m.MaxIterations
}
