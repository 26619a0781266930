// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/bootcampos/bootcamp/cmd/bootcamp"

func main() {
	cmd.Execute()
}
