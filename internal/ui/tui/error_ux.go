package tui

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/lumen/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

const (
	msgUnexpected  = "Unexpected error (see logs)"
	msgMemoTooLong = "memo must be at most 28 bytes"
)

// userMessage turns any error into one short line for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Timed out, try again"
	}
	if errors.Is(err, context.Canceled) {
		return "Cancelled"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidInput, domain.KindNotFound, domain.KindBusinessRule:
			if oe.Err != nil {
				return oe.Err.Error()
			}
			return "Not found"

		case domain.KindBadResponse, domain.KindTransport:
			return "could not reach the Stellar network, try again"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "balance.") && oe.Err != nil {
				return oe.Err.Error()
			}
		}
	}

	return msgUnexpected
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
