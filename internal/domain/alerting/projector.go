// Package alerting contiene la lógica pura de alertas de stock bajo:
// proyección de quiebre de stock y resolución de proveedor preferido.
// No toca la base de datos; opera sobre filas planas ya consultadas.
package alerting

import "github.com/shopspring/decimal"

// ProjectStockout convierte el total vendido en la ventana de promedio en una
// velocidad diaria y proyecta los días hasta quiebre de stock.
//
//	velocidad = totalVendido / max(ventanaDías, 1)
//	días      = ceil(stockActual / velocidad)   si velocidad > 0
//	nil                                          si velocidad == 0
//
// Un resultado nil significa velocidad indefinida: la elegibilidad ya garantizó
// ventas en la ventana de actividad (más larga), pero la ventana de promedio
// puede legítimamente sumar cero. La ventana se acota a mínimo 1 día para que
// una mala configuración nunca divida por cero. El redondeo es siempre techo,
// incluso en divisiones exactas.
func ProjectStockout(currentQuantity int64, totalSold decimal.Decimal, windowDays int) *int64 {
	if windowDays < 1 {
		windowDays = 1
	}
	avgDaily := totalSold.Div(decimal.NewFromInt(int64(windowDays)))
	if !avgDaily.IsPositive() {
		return nil
	}
	days := decimal.NewFromInt(currentQuantity).Div(avgDaily).Ceil().IntPart()
	if days < 0 {
		days = 0
	}
	return &days
}
