/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Paintersrp/sift/internal/constants"
	"github.com/Paintersrp/sift/internal/state"
	"github.com/Paintersrp/sift/pkg/cmd/root"
)

func Execute() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the root command and returns the process exit code. Errors
// are printed once, after the terminal has been handed back.
func run(args []string, stderr io.Writer) int {
	s, err := state.NewState()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", constants.AppName, err)
		return 1
	}
	defer s.Close()

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", constants.AppName, err)
		return 1
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", constants.AppName, err)
		return 1
	}

	return 0
}
