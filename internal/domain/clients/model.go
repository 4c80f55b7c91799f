package clients

import "time"

// DefaultMedicalCondition se usa cuando el gato no trae condición médica.
const DefaultMedicalCondition = "Ninguna"

// Client es el dueño de uno o más gatos.
type Client struct {
	ID      string
	Name    string
	Phone   string
	Address string
	Email   string

	EmergencyContactName  string
	EmergencyContactPhone string

	// PhotoConsent: autoriza publicar fotos de sus gatos.
	PhotoConsent bool

	Cats []Cat

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Cat struct {
	ID               string
	ClientID         string
	Name             string
	Age              string // texto libre ("2 años", "8 meses")
	MedicalCondition string
}

// CatNames devuelve los nombres en el orden guardado.
func (c Client) CatNames() []string {
	out := make([]string, 0, len(c.Cats))
	for _, cat := range c.Cats {
		out = append(out, cat.Name)
	}
	return out
}
