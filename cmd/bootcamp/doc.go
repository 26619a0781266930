// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the bootcamp command line.
//
// The root command boots a simulated BootcampOS session and runs its shell
// on standard input. The config subcommands inspect and create the CUE
// configuration file the session is built from.
package cmd
