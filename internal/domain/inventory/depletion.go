package inventory

// Estados del estimado de agotamiento.
const (
	DepletionNoData    = "NO_DATA"   // sin movimientos en la ventana
	DepletionUnbounded = "UNBOUNDED" // consumo cero: no se agota al ritmo actual
	DepletionEstimated = "ESTIMATED"
)

// DepletionEstimate proyecta en cuántos días se agota el stock de un artículo.
// Es una extrapolación lineal sobre las salidas recientes, NO una garantía: el
// núcleo la expone como heurística y los days pueden ser fraccionarios.
type DepletionEstimate struct {
	State      string
	Days       float64 // solo válido cuando State == ESTIMATED
	DailyRate  float64 // salidas promedio por día dentro de la ventana
	WindowDays int
}

// EstimateDepletion calcula el estimado a partir de la cantidad actual, el total de
// salidas (OUTBOUND) dentro de la ventana y el número de movimientos observados en
// ella. Sin movimientos → NO_DATA; tasa de consumo cero → UNBOUNDED.
func EstimateDepletion(quantity, outboundTotal int64, movements int, windowDays int) DepletionEstimate {
	est := DepletionEstimate{WindowDays: windowDays}
	if movements == 0 {
		est.State = DepletionNoData
		return est
	}
	rate := float64(outboundTotal) / float64(windowDays)
	est.DailyRate = rate
	if rate == 0 {
		est.State = DepletionUnbounded
		return est
	}
	est.State = DepletionEstimated
	est.Days = float64(quantity) / rate
	return est
}
