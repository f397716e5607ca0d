package interfaces

import "construtora_xpto/internal/domain/entities"

// IDocumentRenderer abstracts the document generators (PDF, spreadsheet).
//
// Renderers consume an already-loaded estimate read-only; they never touch
// storage and compute display totals through the pricing package.
type IDocumentRenderer interface {
	RenderPDF(e entities.Estimate) ([]byte, error)
	RenderSpreadsheet(e entities.Estimate) ([]byte, error)
}
