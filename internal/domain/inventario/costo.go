package inventario

import "github.com/shopspring/decimal"

// CostoPromedioPonderado calcula el nuevo costo promedio tras una entrada.
// Nuevo = ((Existencia * CostoActual) + (CantEntrada * CostoEntrada)) / (Existencia + CantEntrada)
func CostoPromedioPonderado(existencia, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := existencia.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := existencia.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum).Round(4)
}

// Valorizar devuelve existencia * costo, redondeado a 2 decimales.
// Existencias negativas no aportan valor.
func Valorizar(existencia, costo decimal.Decimal) decimal.Decimal {
	if existencia.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return existencia.Mul(costo).Round(2)
}

// CantidadSugerida es lo que falta para llegar a 1.5 veces el mínimo.
func CantidadSugerida(existencia, minimo decimal.Decimal) decimal.Decimal {
	ideal := minimo.Mul(decimal.NewFromFloat(1.5))
	falta := ideal.Sub(existencia)
	if falta.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return falta
}
