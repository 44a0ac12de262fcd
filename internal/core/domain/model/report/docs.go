// Package report provides the PdfRecord entity: an append-only audit trail of
// documents generated for a process, keyed by PdfType.
package report
