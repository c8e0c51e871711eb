// SPDX-License-Identifier: MIT

// Command lvlp solves linear programs from YAML/JSON documents.
package main

import (
	"os"

	"github.com/katalvlaran/lvlp/cli"
	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	cmd := cli.NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}
