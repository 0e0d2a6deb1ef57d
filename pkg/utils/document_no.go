package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateDocumentNo builds a document identifier in the form
// PREFIX-YYYYMMDD-NNNN, e.g. "INV-20250901-4821". The random suffix keeps
// concurrent requests on the same day from colliding in practice.
func GenerateDocumentNo(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, now.Format("20060102"), rand.Intn(10000))
}
