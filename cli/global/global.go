/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/DocCert/DocCert/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "doccert"
	Description     = "DocCert CLI"
	LongDescription = "DocCert command line interface: upload, certify and verify documents"
	Copyright       = "Copyright (c) 2024-2026 Tenebris Technologies Inc."
)

// Set by persistent flags on the root command
var (
	Output string
	Debug  bool
)
