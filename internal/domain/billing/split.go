package billing

// Porcentajes del reparto; deben sumar 100.
const (
	GasolinePercent  int64 = 10
	CaretakerPercent int64 = 40
	OwnerPercent     int64 = 50
)

// Split es el reparto del total de una guardería.
type Split struct {
	Gasoline  int64 `json:"gasolina"`
	Caretaker int64 `json:"cuidador"`
	Owner     int64 `json:"negocio"`
}

// Sum devuelve gasolina + cuidador + negocio.
func (s Split) Sum() int64 {
	return s.Gasoline + s.Caretaker + s.Owner
}

// SplitRevenue reparte el total en enteros. El residuo de redondeo queda en la
// parte del negocio para que la suma sea exactamente el total.
func SplitRevenue(total int64) Split {
	gasoline := total * GasolinePercent / 100
	caretaker := total * CaretakerPercent / 100
	return Split{
		Gasoline:  gasoline,
		Caretaker: caretaker,
		Owner:     total - gasoline - caretaker,
	}
}
