package billing

// Tarifas por visita en unidades enteras de moneda (COP).
const (
	PriceOneCat  int64 = 40000
	PriceTwoCats int64 = 60000
	PriceFlat    int64 = 80000
)

// PricePerVisit aplica la tabla de precios por cantidad de gatos.
// 3 a 5 gatos y cualquier otro valor (0, 6 o más) pagan la tarifa plana.
func PricePerVisit(catCount int) int64 {
	switch catCount {
	case 1:
		return PriceOneCat
	case 2:
		return PriceTwoCats
	default:
		return PriceFlat
	}
}

// TotalDue = visitas × precio por visita. Sin visitas el total es 0.
func TotalDue(visitCount, catCount int) int64 {
	if visitCount <= 0 {
		return 0
	}
	return int64(visitCount) * PricePerVisit(catCount)
}
