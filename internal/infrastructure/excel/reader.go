// Package excel adapta excelize a los puertos de import/export de la aplicación.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Reader lee la primera hoja de un .xlsx como filas de celdas en crudo.
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader { return &Reader{} }

// ReadRows abre el archivo desde el stream y devuelve las filas de la primera hoja.
func (r *Reader) ReadRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	return rows, nil
}
