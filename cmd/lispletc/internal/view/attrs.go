package view

import (
	"log/slog"
	"path/filepath"

	"github.com/lmittmann/tint"
)

// PageAttr names one source page, always slash-separated, so build and
// serve log lines stay grep-compatible across platforms.
func PageAttr(rel string) slog.Attr {
	return slog.String("page", filepath.ToSlash(rel))
}

// BundleAttr groups the two halves of a compiled bundle: the rendered
// markup document and the generated page module.
func BundleAttr(markupPath, modulePath string) slog.Attr {
	return slog.Group("bundle",
		slog.String("markup", markupPath),
		slog.String("module", modulePath),
	)
}

// ErrAttr logs a failure under the conventional err key. The human
// handler colors it; the JSON handler keeps the message text.
func ErrAttr(err error) slog.Attr {
	return tint.Err(err)
}
