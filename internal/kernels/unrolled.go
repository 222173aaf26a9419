package kernels

// The unrolled kernels process four elements per iteration and finish the
// tail with the generic loop. Bounds are hoisted so the compiler can drop
// the per-element checks inside the main loop.

func addUnrolled(dst, a, b []complex128) {
	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		x := a[i : i+4 : i+4]
		y := b[i : i+4 : i+4]

		d[0] = complex(real(x[0])+real(y[0]), imag(x[0])+imag(y[0]))
		d[1] = complex(real(x[1])+real(y[1]), imag(x[1])+imag(y[1]))
		d[2] = complex(real(x[2])+real(y[2]), imag(x[2])+imag(y[2]))
		d[3] = complex(real(x[3])+real(y[3]), imag(x[3])+imag(y[3]))
	}

	addGeneric(dst[i:], a[i:], b[i:])
}

func mulUnrolled(dst, a, b []complex128) {
	n := len(dst)
	a = a[:n]
	b = b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		x := a[i : i+4 : i+4]
		y := b[i : i+4 : i+4]

		d[0] = mul(x[0], y[0])
		d[1] = mul(x[1], y[1])
		d[2] = mul(x[2], y[2])
		d[3] = mul(x[3], y[3])
	}

	mulGeneric(dst[i:], a[i:], b[i:])
}

func scaleUnrolled(dst, src []complex128, r float64) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		d := dst[i : i+4 : i+4]
		s := src[i : i+4 : i+4]

		d[0] = scale(s[0], r)
		d[1] = scale(s[1], r)
		d[2] = scale(s[2], r)
		d[3] = scale(s[3], r)
	}

	scaleGeneric(dst[i:], src[i:], r)
}
