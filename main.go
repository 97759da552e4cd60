// Package main generates printable medical prescriptions (receituário médico)
// as A4 PDF documents.
//
// A request file names the patient and one or more dated prescriptions.
// Medicines are looked up in the medicine catalog and laid out eight per
// page; longer lists continue on pages marked as continuations. Each
// prescription starts on its own page and ends with the place, date and
// signature block. Prescriptions may ask for renewals, which repeat them on
// later clinic workdays.
//
// The document is saved to the output directory, or emailed when an email
// recipient is configured.
//
// Usage: receituario [--version] [--preview] <request.yaml>
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const version = "1.0.0"

// ---------------------------------------------------------------------------
// Main
// ---------------------------------------------------------------------------

// options are the parsed command line arguments.
type options struct {
	version bool
	preview bool
	request string
}

var errUsage = errors.New("usage: receituario [--version] [--preview] <request.yaml>")

func parseArgs(args []string) (options, error) {
	var opts options
	for _, arg := range args {
		switch arg {
		case "--version", "-v":
			opts.version = true
		case "--preview", "-p":
			opts.preview = true
		default:
			if opts.request != "" || len(arg) > 0 && arg[0] == '-' {
				return opts, errUsage
			}
			opts.request = arg
		}
	}
	if !opts.version && opts.request == "" {
		return opts, errUsage
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.version {
		fmt.Printf("receituario v%s\n", version)
		return
	}

	// A missing .env file is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg, err := loadConfig(defaultConfigFile, configPath(defaultConfigFile))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, opts, os.Stdout, logger); err != nil {
		logger.Error("Prescription generation failed", "error", err)
		os.Exit(1)
	}
}

// run performs one generation: load inputs, lay out, then preview, save or mail.
func run(cfg *Config, opts options, stdout io.Writer, logger *slog.Logger) error {
	catalog := defaultCatalog()
	if cfg.Catalog != "" {
		c, err := loadCatalog(cfg.Catalog)
		if err != nil {
			return err
		}
		catalog = c
	}

	req, err := loadRequest(opts.request)
	if err != nil {
		return err
	}

	prescriptions := expandRenewals(newClinicCalendar(), req.Prescriptions, cfg.RenewalIntervalDays, logger.Warn)

	gen := NewGenerator(cfg.Letterhead, catalog.Lookup)
	gen.Logger = logger

	if opts.preview {
		rec, err := gen.Preview(req.Patient, prescriptions)
		if err != nil {
			return err
		}
		return rec.WritePreview(stdout)
	}

	doc, err := gen.Build(req.Patient, prescriptions)
	if err != nil {
		return err
	}

	filename := req.Filename
	if filename == "" {
		filename = documentFilename(req.Patient, prescriptions)
	}

	if cfg.Email.To != "" {
		data, err := doc.Bytes()
		if err != nil {
			return err
		}
		ref := documentRef(time.Now())
		subject := fmt.Sprintf("Receituário - %s (%d receita(s))", req.Patient.Name, len(prescriptions))
		if err := sendEmail(cfg, subject, ref, Attachment{Filename: filename, Data: data}); err != nil {
			return err
		}
		logger.Info("Prescriptions emailed", "to", cfg.Email.To, "file", filename, "ref", ref, "pages", doc.PageCount())
		return nil
	}

	path := filepath.Join(cfg.OutputDir, filename)
	if err := doc.Save(path); err != nil {
		return err
	}
	logger.Info("Prescriptions saved", "file", path, "pages", doc.PageCount())
	return nil
}
