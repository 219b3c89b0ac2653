package safe

import (
	"context"
	"io"

	"github.com/sohosai/hyperdashi-client-sub000/pkg/utils/logging"
)

// Close releases resource and logs a failure under its name. Meant for defer,
// where the error has nowhere to go. A nil closer is ignored.
func Close(ctx context.Context, name string, resource io.Closer) {
	if resource == nil {
		return
	}
	if err := resource.Close(); err != nil {
		logging.From(ctx).Warn("failed to close resource",
			"resource", name,
			"error", err,
		)
	}
}
