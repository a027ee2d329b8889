package main

import (
	"fmt"
	"os"

	"github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/cmd/nscd/cmd"
)

func main() {
	params.SetAddressPrefixes()
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
