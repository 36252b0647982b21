package receiptstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

const defaultReceiptsDir = "receipts"
const indexFile = "index.jsonl"
const maskValue = "********"

// reSeed matches strkey-encoded secret seeds anywhere in free text.
var reSeed = regexp.MustCompile(`\bS[A-Z2-7]{55}\b`)

type JSONStore struct {
	rootDir         string
	receiptsDirName string
	maskingEnabled  bool
	now             func() time.Time
	newID           func() string
}

type Option func(*JSONStore)

// WithMasking controls scrubbing of seed-looking text (e.g. a secret pasted
// into the memo field) before a receipt is written. Enabled by default.
func WithMasking(enabled bool) Option {
	return func(s *JSONStore) { s.maskingEnabled = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDs overrides receipt id generation (useful for tests).
func WithIDs(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Receipts.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReceiptsDir
	}

	s := &JSONStore{
		rootDir:         root,
		receiptsDirName: dir,
		maskingEnabled:  true,
		now:             time.Now,
		newID:           uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReceiptStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	return filepath.Join(s.rootDir, s.receiptsDirName)
}

func (s *JSONStore) SaveReceipt(r domain.Receipt) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "receiptstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := r
	if toSave.SubmittedAt.IsZero() {
		toSave.SubmittedAt = s.now()
	}
	toSave.SubmittedAt = toSave.SubmittedAt.UTC()
	if strings.TrimSpace(toSave.ID) == "" {
		toSave.ID = s.newID()
	}
	if s.maskingEnabled {
		toSave = maskReceipt(toSave)
	}

	filename := fmt.Sprintf("%s_%s_%s.json",
		toSave.SubmittedAt.Format("20060102T150405Z"),
		slugify(string(toSave.Operation)),
		shortHash(toSave.Hash),
	)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "receiptstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "receiptstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "receiptstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := s.appendIndex(dir, filename, toSave); err != nil {
		return toSave.ID, &domain.OpError{
			Op:   "receiptstore.index",
			Kind: domain.KindExecution,
			Path: filepath.Join(dir, indexFile),
			Err:  err,
		}
	}

	return toSave.ID, nil
}

type indexEntry struct {
	ID          string    `json:"id"`
	File        string    `json:"file"`
	Hash        string    `json:"hash"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (s *JSONStore) appendIndex(dir, filename string, r domain.Receipt) error {
	line, err := json.Marshal(indexEntry{
		ID:          r.ID,
		File:        filename,
		Hash:        r.Hash,
		SubmittedAt: r.SubmittedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListReceipts returns the newest receipts first. limit <= 0 means all.
// A missing receipts directory is not an error.
func (s *JSONStore) ListReceipts(limit int) ([]domain.Receipt, error) {
	dir := s.dir()
	indexPath := filepath.Join(dir, indexFile)

	f, err := os.Open(indexPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Receipt{}, nil
		}
		return nil, &domain.OpError{Op: "receiptstore.list", Kind: domain.KindExecution, Path: indexPath, Err: err}
	}
	defer f.Close()

	var entries []indexEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e indexEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			// Skip torn lines from an interrupted append.
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "receiptstore.list", Kind: domain.KindExecution, Path: indexPath, Err: err}
	}

	out := make([]domain.Receipt, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		path := filepath.Join(dir, entries[i].File)
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, &domain.OpError{Op: "receiptstore.read", Kind: domain.KindNotFound, Path: path, Err: err}
		}
		var r domain.Receipt
		if err := json.Unmarshal(b, &r); err != nil {
			return nil, &domain.OpError{Op: "receiptstore.read", Kind: domain.KindInvalidConfig, Path: path, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}

// maskReceipt returns a masked copy (does NOT mutate the input).
func maskReceipt(r domain.Receipt) domain.Receipt {
	out := r
	out.Memo = reSeed.ReplaceAllString(r.Memo, maskValue)
	return out
}

func shortHash(h string) string {
	h = slugify(h)
	if h == "" {
		return "nohash"
	}
	if len(h) > 8 {
		return h[:8]
	}
	return h
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
