package forst

import "math"

// DevPercent é o desvio percentual do realizado sobre a meta, 0 quando a meta é 0
func DevPercent(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return (actual - target) / target * 100
}

// HitRate é o percentual de pedidos sobre ofertas arredondado para inteiro
func HitRate(ordersCount, offersCount int) int {
	if offersCount == 0 {
		return 0
	}
	return int(math.Round(float64(ordersCount) / float64(offersCount) * 100))
}

// OpenFunnel nunca é negativo, mesmo quando os pedidos superam as ofertas
func OpenFunnel(offersValue, ordersReceived float64) float64 {
	return math.Max(0, offersValue-ordersReceived)
}
