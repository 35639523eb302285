package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/newpost/internal/newpost"
)

func main() {
	creator := newpost.NewCreator(afero.NewOsFs())

	if err := creator.Run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, newpost.ErrMissingTitle) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
