package kernels

func addGeneric(dst, a, b []complex128) {
	for i := range dst {
		dst[i] = complex(real(a[i])+real(b[i]), imag(a[i])+imag(b[i]))
	}
}

func mulGeneric(dst, a, b []complex128) {
	for i := range dst {
		dst[i] = mul(a[i], b[i])
	}
}

func scaleGeneric(dst, src []complex128, r float64) {
	for i := range dst {
		dst[i] = scale(src[i], r)
	}
}
