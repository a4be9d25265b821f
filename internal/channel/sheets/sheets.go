// Package sheets mirrors submissions into a Google spreadsheet, one row
// per submission. The channel is optional infrastructure: without
// credentials it skips, and any API failure is reported back as a
// non-fatal result, never an error to the caller.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// Config holds the service-account credentials and the target spreadsheet.
// All three values are required for the channel to be active.
type Config struct {
	ServiceAccountEmail string
	// PrivateKey is the PEM key; literal \n sequences from env files are
	// expanded before use.
	PrivateKey    string
	SpreadsheetID string
}

// Configured reports whether all required credentials are present.
func (c Config) Configured() bool {
	return c.ServiceAccountEmail != "" && c.PrivateKey != "" && c.SpreadsheetID != ""
}

// Ledger appends submission rows to the staff spreadsheet.
type Ledger struct {
	cfg Config
	log *zap.Logger

	// newService is swapped in tests.
	newService func(ctx context.Context) (*sheetsapi.Service, error)
}

// NewLedger creates the spreadsheet channel.
func NewLedger(cfg Config, log *zap.Logger) *Ledger {
	l := &Ledger{cfg: cfg, log: log}
	l.newService = l.authorizedService
	return l
}

func (l *Ledger) authorizedService(ctx context.Context) (*sheetsapi.Service, error) {
	conf := &jwt.Config{
		Email:      l.cfg.ServiceAccountEmail,
		PrivateKey: []byte(ExpandKey(l.cfg.PrivateKey)),
		Scopes:     []string{spreadsheetScope},
		TokenURL:   google.JWTTokenURL,
	}
	return sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
}

// AppendRow appends one row to the named sheet, creating the sheet with a
// header row derived from the row's column order if it does not exist yet.
// Two concurrent first writes to a brand-new sheet can race on creation;
// at this traffic volume that is accepted rather than guarded.
func (l *Ledger) AppendRow(ctx context.Context, sheetName string, row channel.Row) channel.Result {
	if !l.cfg.Configured() {
		return channel.Skipped("spreadsheet credentials missing")
	}

	svc, err := l.newService(ctx)
	if err != nil {
		return channel.Failed(fmt.Errorf("sheets auth: %w", err))
	}

	doc, err := svc.Spreadsheets.Get(l.cfg.SpreadsheetID).Context(ctx).Do()
	if err != nil {
		return channel.Failed(fmt.Errorf("load spreadsheet: %w", err))
	}

	exists := false
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			exists = true
			break
		}
	}

	if !exists {
		if err := l.createSheet(ctx, svc, sheetName, row.Headers()); err != nil {
			return channel.Failed(err)
		}
	}

	if err := l.appendValues(ctx, svc, sheetName, row.Values()); err != nil {
		return channel.Failed(err)
	}

	l.log.Info("submission mirrored to spreadsheet", zap.String("sheet", sheetName))
	return channel.OK("")
}

func (l *Ledger) createSheet(ctx context.Context, svc *sheetsapi.Service, sheetName string, headers []string) error {
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: sheetName},
			},
		}},
	}
	if _, err := svc.Spreadsheets.BatchUpdate(l.cfg.SpreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheetName, err)
	}
	if err := l.appendValues(ctx, svc, sheetName, headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

func (l *Ledger) appendValues(ctx context.Context, svc *sheetsapi.Service, sheetName string, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{cells}}
	_, err := svc.Spreadsheets.Values.
		Append(l.cfg.SpreadsheetID, fmt.Sprintf("'%s'!A1", sheetName), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to %q: %w", sheetName, err)
	}
	return nil
}

// ExpandKey turns the literal \n sequences an env file carries into real
// newlines so the PEM key parses.
func ExpandKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
