package numeric

// LegendreP evaluates the degree-n Legendre polynomial at x via the
// standard three-term recurrence: L_0=1, L_1=x, n*L_n = (2n-1)*x*L_{n-1}
// - (n-1)*L_{n-2} (spec §4.2).
func LegendreP(n int, x float64) float64 {
	if n == 0 {
		return 1
	}
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		p2 := (float64(2*k-1)*x*p1 - float64(k-1)*p0) / float64(k)
		p0, p1 = p1, p2
	}
	return p1
}
