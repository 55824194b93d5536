// Copyright 2025 The jp-language-data Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

// printVersion prints the version and build information.
func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	out := c.App.Writer
	if _, err := fmt.Fprintf(out, "%s %s\n", c.App.Name, versionInfo.GitVersion); err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrKanjigen, err)
	}
	for _, name := range copyrightNames {
		if _, err := fmt.Fprintf(out, "Copyright (c) %s\n", name); err != nil {
			return fmt.Errorf("%w: printing version: %w", ErrKanjigen, err)
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrKanjigen, err)
	}

	tbl := table.New("Build", "").WithWriter(out)
	tbl.AddRow("GitVersion", versionInfo.GitVersion)
	tbl.AddRow("GitCommit", versionInfo.GitCommit)
	tbl.AddRow("GitTreeState", versionInfo.GitTreeState)
	tbl.AddRow("BuildDate", versionInfo.BuildDate)
	tbl.AddRow("GoVersion", versionInfo.GoVersion)
	tbl.AddRow("Compiler", versionInfo.Compiler)
	tbl.AddRow("Platform", versionInfo.Platform)
	tbl.Print()

	return nil
}
