// SPDX-License-Identifier: MPL-2.0

// Package config handles BootcampOS configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from ~/.config/bootcamp/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/bootcamp/config.cue on
// macOS, %APPDATA%\bootcamp\config.cue on Windows). Every field is optional;
// missing fields keep the values of a freshly installed system.
//
// Files are validated against the embedded CUE schema (config_schema.cue)
// before they are merged, and the decoded Config is validated again for
// rules the schema cannot express, such as installed packages having to be
// part of the catalog.
package config
