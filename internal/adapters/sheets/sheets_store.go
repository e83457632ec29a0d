// Package sheets implements the TabularStore port against the Google Sheets
// API. One spreadsheet holds every sheet; the adapter never assumes
// transactional behavior beyond the single-call granularity the API offers.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/apperrors"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/domain"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/core/ports"
	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
)

// Store talks to one spreadsheet through the Sheets API.
type Store struct {
	srv           *sheetsapi.Service
	spreadsheetID string
	logger        *slog.Logger

	mu       sync.Mutex
	sheetIDs map[string]int64
}

// NewStore builds a Store from a service-account credentials file.
func NewStore(ctx context.Context, credentialsFile, spreadsheetID string, logger *slog.Logger) (*Store, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	srv, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{srv: srv, spreadsheetID: spreadsheetID, logger: logger, sheetIDs: make(map[string]int64)}, nil
}

func (s *Store) EnsureSheet(ctx context.Context, esquema domain.EsquemaHoja) error {
	if _, err := s.sheetID(ctx, esquema.Nombre); errors.Is(err, apperrors.ErrNotFound) {
		req := &sheetsapi.BatchUpdateSpreadsheetRequest{Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{Properties: &sheetsapi.SheetProperties{Title: esquema.Nombre}},
		}}}
		if _, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return s.writeErr("add sheet", esquema.Nombre, err)
		}
		s.forget(esquema.Nombre)
	} else if err != nil {
		return err
	}

	if _, err := s.srv.Spreadsheets.Values.Clear(s.spreadsheetID, esquema.Nombre, &sheetsapi.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return s.writeErr("clear sheet", esquema.Nombre, err)
	}

	header := make([]any, len(esquema.Headers))
	for i, h := range esquema.Headers {
		header[i] = h
	}
	vr := &sheetsapi.ValueRange{Values: [][]any{header}}
	rango := fmt.Sprintf("%s!A1", esquema.Nombre)
	if _, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, rango, vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return s.writeErr("write header", esquema.Nombre, err)
	}
	return nil
}

func (s *Store) DropSheet(ctx context.Context, nombre string) error {
	id, err := s.sheetID(ctx, nombre)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{Requests: []*sheetsapi.Request{{
		DeleteSheet: &sheetsapi.DeleteSheetRequest{SheetId: id},
	}}}
	if _, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return s.writeErr("delete sheet", nombre, err)
	}
	s.forget(nombre)
	return nil
}

func (s *Store) AppendRow(ctx context.Context, nombre string, valores []any) error {
	vr := &sheetsapi.ValueRange{Values: [][]any{valores}}
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, nombre, vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return s.writeErr("append row", nombre, err)
	}
	return nil
}

func (s *Store) ReadAll(ctx context.Context, nombre string) ([]ports.Record, error) {
	esquema, ok := domain.EsquemaPorNombre(nombre)
	if !ok {
		return nil, fmt.Errorf("hoja desconocida %q: %w", nombre, apperrors.ErrNotFound)
	}

	filas, err := s.values(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if len(filas) < 2 {
		return []ports.Record{}, nil
	}

	registros := make([]ports.Record, 0, len(filas)-1)
	for i, fila := range filas[1:] {
		registro, vacia, err := esquema.MapRow(fila)
		if err != nil {
			s.logger.Warn("Row failed schema coercion, dropped",
				slog.String("sheet", nombre), slog.Int("row", i+2), slog.String("error", err.Error()))
			continue
		}
		if vacia {
			continue
		}
		registros = append(registros, registro)
	}
	return registros, nil
}

func (s *Store) UpdateCell(ctx context.Context, nombre string, fila, columna int, valor any) error {
	rango := fmt.Sprintf("%s!%s%d", nombre, columnLetter(columna), fila)
	vr := &sheetsapi.ValueRange{Values: [][]any{{valor}}}
	if _, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, rango, vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return s.writeErr("update cell", nombre, err)
	}
	return nil
}

func (s *Store) DeleteLastRow(ctx context.Context, nombre string) error {
	id, err := s.sheetID(ctx, nombre)
	if err != nil {
		return err
	}
	filas, err := s.values(ctx, nombre)
	if err != nil {
		return err
	}
	if len(filas) < 2 {
		return fmt.Errorf("hoja %q sin filas: %w", nombre, apperrors.ErrStoreWrite)
	}
	ultima := int64(len(filas))
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{Requests: []*sheetsapi.Request{{
		DeleteDimension: &sheetsapi.DeleteDimensionRequest{Range: &sheetsapi.DimensionRange{
			SheetId:    id,
			Dimension:  "ROWS",
			StartIndex: ultima - 1,
			EndIndex:   ultima,
		}},
	}}}
	if _, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return s.writeErr("delete last row", nombre, err)
	}
	return nil
}

func (s *Store) FindRowByID(ctx context.Context, nombre string, columnaID int, id string) (*ports.FoundRow, error) {
	filas, err := s.values(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if len(filas) < 2 {
		return nil, fmt.Errorf("id %q en hoja %q: %w", id, nombre, apperrors.ErrNotFound)
	}
	buscado := strings.ToLower(strings.TrimSpace(id))
	for i, fila := range filas[1:] {
		var celda any
		if columnaID < len(fila) {
			celda = fila[columnaID]
		}
		if strings.ToLower(sanitize.Text(celda, 0)) == buscado {
			return &ports.FoundRow{Values: fila, Row: i + 2}, nil
		}
	}
	return nil, fmt.Errorf("id %q en hoja %q: %w", id, nombre, apperrors.ErrNotFound)
}

func (s *Store) values(ctx context.Context, nombre string) ([][]any, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, nombre).Context(ctx).Do()
	if err != nil {
		return nil, s.readErr(nombre, err)
	}
	return resp.Values, nil
}

// sheetID resolves the numeric id of a sheet by title, caching results.
func (s *Store) sheetID(ctx context.Context, nombre string) (int64, error) {
	s.mu.Lock()
	if id, ok := s.sheetIDs[nombre]; ok {
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	meta, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, s.readErr(nombre, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range meta.Sheets {
		s.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
	}
	if id, ok := s.sheetIDs[nombre]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
}

func (s *Store) forget(nombre string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sheetIDs, nombre)
}

func (s *Store) readErr(nombre string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrTimeout)
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 404 {
		return fmt.Errorf("hoja %q: %w", nombre, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to read sheet %q: %w", nombre, err)
}

func (s *Store) writeErr(op, nombre string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %q: %w", op, nombre, apperrors.ErrTimeout)
	}
	return fmt.Errorf("%s %q: %v: %w", op, nombre, err, apperrors.ErrStoreWrite)
}

// columnLetter converts a 0-based column index to its A1 letter form.
func columnLetter(col int) string {
	letras := ""
	for col >= 0 {
		letras = string(rune('A'+col%26)) + letras
		col = col/26 - 1
	}
	return letras
}

var _ ports.TabularStore = (*Store)(nil)
