package timeline

import (
	"os"
	"time"

	"github.com/evergrid/contract-timeline-backend/internal/types"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func date(y, m, d int) types.Date {
	return types.NewDate(y, time.Month(m), d)
}
