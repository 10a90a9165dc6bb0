package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// classeur wraps the inventory workbook and hands its sheets out as rows of
// raw cell values. Reading raw keeps date cells as Excel serial numbers
// whatever their display format; the row codec converts them.
type classeur struct {
	fichier *excelize.File
}

// ouvreClasseur opens a workbook from its raw content.
func ouvreClasseur(contenu []byte) (*classeur, error) {
	fichier, err := excelize.OpenReader(bytes.NewReader(contenu))
	if err != nil {
		return nil, err
	}
	return &classeur{fichier: fichier}, nil
}

// Lignes returns every row of the sheet. Rows are ragged: trailing empty
// cells are dropped by the reader, the row codec pads them back.
func (c *classeur) Lignes(onglet string) ([][]string, error) {
	lignes, err := c.fichier.GetRows(onglet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("lecture de l'onglet %q: %w", onglet, err)
	}
	return lignes, nil
}

// Close releases the workbook resources.
func (c *classeur) Close() error {
	return c.fichier.Close()
}
