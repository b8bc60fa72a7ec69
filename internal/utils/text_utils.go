package utils

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TextProcessor provides utilities for cleaning and displaying cell text
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Preview shortens text to at most maxRunes characters followed by "..."
func (tp *TextProcessor) Preview(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	return string(runes[:maxRunes]) + "..."
}

// SanitizeUTF8 drops invalid UTF-8 bytes from text read out of a file
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// FormatValue renders a cell value for display. Integral numbers print
// without a fractional part so phone numbers stay readable.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
