package alignment

import "math"

const (
	fresnelEps   = 6e-15
	fresnelMaxIt = 120
	fresnelFPMin = 1e-300
	fresnelXMin  = 1.5
)

// fresnel evaluates the Fresnel integrals
//
//	S(x) = int 0..x sin(pi/2 t^2) dt
//	C(x) = int 0..x cos(pi/2 t^2) dt
//
// using a power series for small |x| and a complex continued fraction
// otherwise. Both branches converge to well below 1e-9 over the argument
// range produced by clothoid evaluation. Both integrals are odd in x.
func fresnel(x float64) (s, c float64) {
	ax := math.Abs(x)
	switch {
	case ax < math.Sqrt(fresnelFPMin):
		s, c = 0, ax
	case ax <= fresnelXMin:
		s, c = fresnelSeries(ax)
	default:
		s, c = fresnelContinuedFraction(ax)
	}
	if x < 0 {
		s, c = -s, -c
	}
	return s, c
}

func fresnelSeries(ax float64) (s, c float64) {
	var sum, sums float64
	sumc := ax
	sign := 1.0
	fact := 0.5 * math.Pi * ax * ax
	odd := true
	term := ax
	n := 3.0
	for k := 1; k <= fresnelMaxIt; k++ {
		term *= fact / float64(k)
		sum += sign * term / n
		test := math.Abs(sum) * fresnelEps
		if odd {
			sign = -sign
			sums = sum
			sum = sumc
		} else {
			sumc = sum
			sum = sums
		}
		if term < test {
			break
		}
		odd = !odd
		n += 2
	}
	return sums, sumc
}

// fresnelContinuedFraction evaluates the large-argument branch through the
// auxiliary complex error-function continued fraction (modified Lentz).
func fresnelContinuedFraction(ax float64) (s, c float64) {
	pix2 := math.Pi * ax * ax
	b := complex(1, -pix2)
	cc := complex(1/fresnelFPMin, 0)
	d := 1 / b
	h := d
	n := -1.0
	for k := 2; k <= fresnelMaxIt; k++ {
		n += 2
		a := complex(-n*(n+1), 0)
		b += complex(4, 0)
		d = 1 / (a*d + b)
		cc = b + a/cc
		del := cc * d
		h *= del
		if math.Abs(real(del)-1)+math.Abs(imag(del)) < fresnelEps {
			break
		}
	}
	h *= complex(ax, -ax)
	phase := complex(math.Cos(0.5*pix2), math.Sin(0.5*pix2))
	cs := complex(0.5, 0.5) * (1 - phase*h)
	return imag(cs), real(cs)
}
