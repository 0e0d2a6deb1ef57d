package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDocumentNo_Format(t *testing.T) {
	now := time.Date(2025, time.September, 1, 10, 30, 0, 0, time.UTC)

	no := GenerateDocumentNo("INV", now)
	assert.Regexp(t, regexp.MustCompile(`^INV-20250901-\d{4}$`), no)

	no = GenerateDocumentNo("RCT", now)
	assert.Regexp(t, regexp.MustCompile(`^RCT-20250901-\d{4}$`), no)
}
