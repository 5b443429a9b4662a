package validator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"gradescan/internal/logging"
	"gradescan/internal/model"
)

// Reasons reported in a rejected ValidationOutcome.
const (
	ReasonMissing    = "file could not be opened"
	ReasonEmpty      = "empty"
	ReasonUnreadable = "unreadable"
	ReasonNoPages    = "no pages"
	ReasonCorrupt    = "corrupt"
)

// DocumentValidator decides whether an upload is an acceptable answer sheet.
type DocumentValidator interface {
	// Allowed reports whether the file name carries an allowed extension.
	Allowed(filename string) bool
	// Verify opens the stored file and never returns an error: every failure becomes a rejected outcome.
	Verify(ctx context.Context, storedPath string) model.ValidationOutcome
	// AllowedExtensions lists the accepted extensions without the leading dot.
	AllowedExtensions() []string
}

// PDFValidator accepts PDF documents with at least one page.
type PDFValidator struct {
	allowed map[string]struct{}
	exts    []string
	logger  *slog.Logger
}

var _ DocumentValidator = (*PDFValidator)(nil)

// NewPDFValidator builds a validator for the given extension allow-list.
// Extensions are matched case-insensitively, with or without a leading dot.
func NewPDFValidator(allowedExtensions []string, logger *slog.Logger) *PDFValidator {
	if logger == nil {
		logger = logging.Nop()
	}
	v := &PDFValidator{allowed: make(map[string]struct{}), logger: logger}
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		if _, dup := v.allowed[ext]; dup {
			continue
		}
		v.allowed[ext] = struct{}{}
		v.exts = append(v.exts, ext)
	}
	return v
}

// AllowedExtensions lists the accepted extensions without the leading dot.
func (v *PDFValidator) AllowedExtensions() []string {
	return append([]string(nil), v.exts...)
}

// Allowed reports whether the part after the last dot is in the allow-list.
// Names without a dot are never allowed.
func (v *PDFValidator) Allowed(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := v.allowed[strings.ToLower(filename[i+1:])]
	return ok
}

// Verify parses the stored file and counts its pages.
// The file handle is closed on every path, including a parser panic.
func (v *PDFValidator) Verify(ctx context.Context, storedPath string) (out model.ValidationOutcome) {
	if err := ctx.Err(); err != nil {
		return model.Reject(err.Error())
	}

	f, err := os.Open(storedPath)
	if err != nil {
		v.logger.Warn("pdf_open_failed", "stored_path", storedPath, "error", err.Error())
		return model.Reject(ReasonMissing)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			v.logger.Warn("pdf_parse_panic", "stored_path", storedPath, "panic", fmt.Sprint(r))
			out = model.Reject(ReasonCorrupt)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return model.Reject(ReasonUnreadable)
	}
	if st.Size() == 0 {
		return model.Reject(ReasonEmpty)
	}

	r, err := pdf.NewReader(f, st.Size())
	if err != nil {
		v.logger.Warn("pdf_parse_failed", "stored_path", storedPath, "error", err.Error())
		return model.Reject(ReasonUnreadable)
	}

	pages := r.NumPage()
	if pages <= 0 {
		return model.Reject(ReasonNoPages)
	}

	v.logger.Debug("pdf_verified", "stored_path", storedPath, "pages", pages)
	return model.Accept(pages)
}
