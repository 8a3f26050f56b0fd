package main

import (
	"fmt"
	"os"

	"github.com/StreamDefi/precrime/cmd/precrime"
)

func main() {
	rootCmd := precrime.BuildPreCrimeCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
