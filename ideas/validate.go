// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ideas

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/idea-board/models"
)

// NormalizeText trims raw input and truncates it to MaxTextLength characters.
func NormalizeText(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	runes := []rune(text)
	if len(runes) > models.MaxTextLength {
		text = string(runes[:models.MaxTextLength])
	}

	if text == "" {
		return "", ErrTextRequired
	}
	return text, nil
}

// ParseID parses a path segment as a base-10 idea id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// clampLimit keeps a list size within (0, MaxListSize]
func clampLimit(limit int) int {
	if limit <= 0 || limit > models.MaxListSize {
		return models.MaxListSize
	}
	return limit
}
