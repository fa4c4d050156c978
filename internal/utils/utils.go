package utils

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/plasmagm/airgm/internal/constants"
)

func Argmax[T cmp.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmax]) == 1 {
			argmax = i
		}
	}
	return
}

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func Average[T Number](s []T) (mean float64) {
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}

func TableIntegrate(s []float64, multiply func(float64) float64, step float64) (sum float64) {
	for i := range s {
		if multiply == nil {
			sum += s[i]
		} else {
			sum += s[i] * multiply(float64(i)*step)
		}
	}
	sum *= step
	return
}

func EV2electronVelocity(energy float64) (v float64) {
	v = math.Sqrt(2 * energy * constants.ElectronCharge / constants.ElectornMass)
	return
}
