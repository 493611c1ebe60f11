package models

import "math"

// Funções puras de cálculo de custo da viagem.
// Campos ausentes (nil) valem zero em toda conta; nunca geram erro.

// OrZero devolve o valor apontado ou 0 quando o ponteiro é nil.
func OrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Arredondar arredonda para 2 casas decimais (centavos).
func Arredondar(valor float64) float64 {
	return math.Round(valor*100) / 100
}

// CalcularCustoCombustivel calcula o custo de combustível a partir da
// quilometragem, autonomia (km por litro) e valor do litro da gasolina.
// Se qualquer um dos três estiver ausente ou for zero, o custo é 0.
func CalcularCustoCombustivel(km, autonomia, valorGasolina *float64) float64 {
	if OrZero(km) == 0 || OrZero(autonomia) == 0 || OrZero(valorGasolina) == 0 {
		return 0
	}
	litros := *km / *autonomia
	return Arredondar(litros * *valorGasolina)
}

// CalcularValorTotal soma passagem, pedágio, aluguel de carro, hospedagem e o
// custo de combustível já calculado.
func CalcularValorTotal(valorPassagem, pedagio, aluguelCarro, custoHospedagem *float64, custoCombustivel float64) float64 {
	return Arredondar(
		OrZero(valorPassagem) +
			OrZero(pedagio) +
			OrZero(aluguelCarro) +
			OrZero(custoHospedagem) +
			custoCombustivel)
}
