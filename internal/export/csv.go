package export

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

// Exporter grava o artefato tabular final. Uma linha por registro, linha de
// cabeçalho com os nomes das colunas, sem coluna de índice.
type Exporter interface {
	ExportReport(path string, report *reconciling.Report) error
	ExportRefunds(path string, rows []domain.RefundRow) error
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ExportReport(path string, report *reconciling.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "erro ao criar o arquivo de exportação")
	}
	defer file.Close()

	if err := WriteReport(file, report); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"path": path,
		"rows": len(report.Rows),
	}).Info("Relatório de reconciliação exportado")

	return nil
}

// WriteReport escreve as linhas reconciliadas na projeção de exportação.
// OrderID só aparece quando o relatório pede sua retenção (modo casado).
func WriteReport(w io.Writer, report *reconciling.Report) error {
	writer := csv.NewWriter(w)

	header := []string{"Title", "SalePrice", "NetSale", "COGS"}
	if report.IncludeOrderID {
		header = append([]string{"OrderID"}, header...)
	}

	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho")
	}

	for _, row := range report.Rows {
		record := []string{
			row.Title,
			row.SalePrice.StringFixed(2),
			row.NetSale.StringFixed(2),
			row.COGS,
		}
		if report.IncludeOrderID {
			record = append([]string{row.OrderID}, record...)
		}

		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "erro ao escrever a linha")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao descarregar o CSV")
}

func (e *CSVExporter) ExportRefunds(path string, rows []domain.RefundRow) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "erro ao criar o arquivo de exportação")
	}
	defer file.Close()

	if err := WriteRefunds(file, rows); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"path": path,
		"rows": len(rows),
	}).Info("Relatório de estornos exportado")

	return nil
}

func WriteRefunds(w io.Writer, rows []domain.RefundRow) error {
	writer := csv.NewWriter(w)

	header := []string{"OrderID", "RefundAmount", "RefundDate", "RefundType", "TotalFeeBasis", "TotalFee"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho")
	}

	for _, row := range rows {
		record := []string{
			row.OrderID,
			row.Amount.StringFixed(2),
			row.Date,
			row.Type,
			row.TotalFeeBasis,
			row.TotalFee,
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "erro ao escrever a linha")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "erro ao descarregar o CSV")
}
