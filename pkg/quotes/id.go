package quotes

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// localIDPrefix marks ids generated on this client. The remote source
// assigns its own ids on submit; a record keeps its local id only until
// replication succeeds.
const localIDPrefix = "local-"

// NewLocalID generates an opaque local record id. The timestamp
// component keeps ids roughly sortable by creation time; the random
// component guarantees ids are never reused.
func NewLocalID() string {
	return fmt.Sprintf("%s%d-%s", localIDPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// IsLocalID reports whether an id was generated locally.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}
