// SPDX-License-Identifier: MPL-2.0

package main

import cmd "testctl/cmd/testctl"

func main() {
	cmd.Execute()
}
