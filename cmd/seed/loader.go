package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// Archivos esperados en el directorio de carga, en orden de dependencia.
const (
	companiesFile = "companies.csv"
	customersFile = "customers.csv"
	itemsFile     = "items.csv"
	invoicesFile  = "invoices.csv"
)

// result conteo por archivo.
type result struct {
	Created int
	Skipped int // duplicados
	Failed  int
}

// loader alimenta los import de cada entidad con las filas CSV de un usuario.
type loader struct {
	userID    string
	latin1    bool
	companies *usecase.CompanyUseCase
	items     *usecase.ItemUseCase
	customers *billing.CustomerUseCase
	invoices  *billing.InvoiceUseCase
	log       *logger.Logger
}

// run carga los cuatro archivos; un archivo ausente se omite.
func (l *loader) run(ctx context.Context, dir string) (map[string]result, error) {
	steps := []struct {
		file string
		load func(ctx context.Context, row map[string]string) error
	}{
		{companiesFile, func(ctx context.Context, row map[string]string) error {
			in, err := decodeRow[dto.CompanyImport](row)
			if err != nil {
				return err
			}
			_, err = l.companies.Import(ctx, l.userID, in)
			return err
		}},
		{customersFile, func(ctx context.Context, row map[string]string) error {
			in, err := decodeRow[dto.CustomerImport](row)
			if err != nil {
				return err
			}
			_, err = l.customers.Import(ctx, l.userID, in)
			return err
		}},
		{itemsFile, func(ctx context.Context, row map[string]string) error {
			in, err := decodeRow[dto.ItemImport](row)
			if err != nil {
				return err
			}
			_, err = l.items.Import(ctx, l.userID, in)
			return err
		}},
		{invoicesFile, func(ctx context.Context, row map[string]string) error {
			in, err := decodeRow[dto.InvoiceImport](row)
			if err != nil {
				return err
			}
			_, err = l.invoices.Import(ctx, l.userID, in)
			return err
		}},
	}

	out := make(map[string]result, len(steps))
	for _, step := range steps {
		path := filepath.Join(dir, step.file)
		rows, err := l.readCSV(path)
		if errors.Is(err, os.ErrNotExist) {
			l.log.Info().Str("file", path).Msg("archivo ausente, se omite")
			continue
		}
		if err != nil {
			return out, err
		}
		var res result
		for i, row := range rows {
			err := step.load(ctx, row)
			switch {
			case err == nil:
				res.Created++
			case errors.Is(err, domain.ErrDuplicate):
				res.Skipped++
			default:
				res.Failed++
				l.log.Warn().Err(err).Str("file", step.file).Int("row", i+2).Msg("fila rechazada")
			}
		}
		out[step.file] = res
	}
	return out, nil
}

// readCSV devuelve las filas como mapas cabecera → valor.
func (l *loader) readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if l.latin1 {
		src = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("seed: leer %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) && rec[i] != "" {
				row[h] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeRow convierte la fila al DTO de importación usando sus etiquetas JSON.
// Los decimales y los flags Y/N aceptan su forma en texto.
func decodeRow[T any](row map[string]string) (T, error) {
	var out T
	raw, err := json.Marshal(row)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return out, nil
}
