/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import (
	"io"

	"github.com/DocCert/DocCert/common"
)

func Banner(w io.Writer) {
	common.Banner(w, Description, Version, Build)
}
