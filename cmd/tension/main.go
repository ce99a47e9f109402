package main

import (
	"fmt"
	"os"

	"github.com/teranos/tension/cmd/tension/commands"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/logger"
)

func main() {
	err := commands.NewRootCmd().Execute()
	if err != nil && logger.JSONOutput {
		logger.Errorw("command failed", logger.FieldError, err)
	}
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		if errors.HasAssertionFailure(err) {
			fmt.Fprintf(os.Stderr, "This is a bug in tension. Details:\n%+v\n", err)
		}
		os.Exit(1)
	}
}
