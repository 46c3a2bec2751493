package dto

// Estados posibles de una fila del import.
const (
	ImportRowImported = "imported"
	ImportRowSkipped  = "skipped"
	ImportRowFailed   = "failed"
)

// ImportRowResult resultado de una fila del archivo importado.
type ImportRowResult struct {
	Row     int    `json:"row"` // número de fila en la hoja (1-based, sin contar cabecera)
	Status  string `json:"status"`
	Name    string `json:"name,omitempty"`
	Reason  string `json:"reason,omitempty"`
	ProductID string `json:"product_id,omitempty"`
}

// ImportReport agregado del import: éxito parcial, nunca aborta el lote completo.
type ImportReport struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Failed   int               `json:"failed"`
	Rows     []ImportRowResult `json:"rows"`
}
