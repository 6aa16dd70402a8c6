package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoteNumberPattern matches every number produced by NewNoteNumber.
var NoteNumberPattern = regexp.MustCompile(`^SN-\d{4}-[A-Z0-9]{8}$`)

// maxNoteNumberAttempts bounds how often Create regenerates a number that collided.
const maxNoteNumberAttempts = 3

// NewNoteNumber builds SN-<year>-<first 8 hex chars of a random UUID, uppercased>.
func NewNoteNumber(now time.Time) string {
	token := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("SN-%04d-%s", now.Year(), token)
}
