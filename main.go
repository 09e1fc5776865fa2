package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/keetool/kee/cmd/root"
	promptutils "github.com/keetool/kee/utils/prompt"
)

func main() {
	if err := root.RootCmd.Execute(); err != nil {
		if errors.Is(err, promptutils.ErrInterrupted) {
			fmt.Println("\nOperation cancelled.")
		} else {
			fmt.Println("Error:", err)
		}
		os.Exit(1)
	}
}
