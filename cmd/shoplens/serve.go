package main

import (
	"errors"
	"fmt"
	"net/http"

	shopchi "github.com/fwojciec/shoplens/chi"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := shopchi.NewServer(c.Addr, deps.Insights, deps.Logger)

	fmt.Fprintf(deps.Stderr, "listening on %s\n", c.Addr)
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
