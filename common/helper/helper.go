package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenRequestID returns a sortable id: timestamp followed by 8 random hex chars.
func GenRequestID() string {
	return time.Now().Format("20060102150405") + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func MessageWithRequestId(message string, id string) string {
	if id == "" {
		return message
	}
	return fmt.Sprintf("%s (request id: %s)", message, id)
}
