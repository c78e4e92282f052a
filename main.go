// Copyright 2024 StorPool
// Licensed under the Apache License 2.0.
// SPDX-License-Identifier: Apache-2.0

package main

import "github.com/storpool/netplan-go/cmd"

func main() {
	cmd.Execute()
}
