package main

import (
	"fmt"
	"os"

	"github.com/mgirard/sheetex"
)

// Run executes the stamp command.
func (c *StampCmd) Run(deps *Dependencies) error {
	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}

	stampedPath := sheetex.StampedPath(c.Output, c.Catalog)
	if err := deps.Stamper.Stamp(deps.Ctx, c.Catalog, stampedPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sheetex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Stamped copy: %s\n", stampedPath)
	return nil
}
