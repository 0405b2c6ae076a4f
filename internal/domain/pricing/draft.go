package pricing

// CategoryDraft es el borrador en memoria de una categoría mientras se crea o edita.
// No se persiste: se consume en Submit o se descarta.
type CategoryDraft struct {
	id    string
	name  string
	price Canonical
}

// NewDraft borrador vacío para el flujo de creación.
func NewDraft() *CategoryDraft {
	return &CategoryDraft{}
}

// DraftFrom borrador sembrado desde una categoría existente; el precio se normaliza aquí.
func DraftFrom(id, name string, price RawPrice) *CategoryDraft {
	return &CategoryDraft{id: id, name: name, price: Normalize(price)}
}

func (d *CategoryDraft) ID() string       { return d.id }
func (d *CategoryDraft) Name() string     { return d.name }
func (d *CategoryDraft) Price() Canonical { return d.price }

// IsNew indica si el borrador corresponde a una creación.
func (d *CategoryDraft) IsNew() bool { return d.id == "" }

// SetName reemplaza el nombre tal cual; el recorte ocurre al enviar.
func (d *CategoryDraft) SetName(name string) {
	d.name = name
}

// SetPrice normaliza y reemplaza el precio.
func (d *CategoryDraft) SetPrice(raw RawPrice) {
	d.price = Normalize(raw)
}

// Submit valida el borrador. Si falla, el borrador queda intacto para corregirlo.
func (d *CategoryDraft) Submit() (Submission, error) {
	sub, err := ValidateForSubmit(d.name, d.price)
	if err != nil {
		return Submission{}, err
	}
	sub.ID = d.id
	return sub, nil
}
