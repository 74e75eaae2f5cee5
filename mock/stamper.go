package mock

import (
	"context"

	"github.com/mgirard/sheetex"
)

var _ sheetex.PageStamper = (*PageStamper)(nil)

// PageStamper is a mock implementation of sheetex.PageStamper.
type PageStamper struct {
	StampFn func(ctx context.Context, srcPath, outPath string) error
}

func (s *PageStamper) Stamp(ctx context.Context, srcPath, outPath string) error {
	return s.StampFn(ctx, srcPath, outPath)
}
