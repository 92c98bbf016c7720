package registry

import (
	"fmt"

	"github.com/vk/bindmapgo/internal/config"
)

// NotFoundError reports a lookup for a (language, abstract type) pair that
// no configuration covers. The caller decides whether to fall back to a
// default representation or abort.
type NotFoundError struct {
	Language     string
	AbstractType config.AbstractType
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no binding configured for language %q, abstract type %q", e.Language, e.AbstractType)
}
