/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"fmt"
	"io"
)

func Banner(w io.Writer, program, version string, build int) {
	_, _ = fmt.Fprintf(w, "%s version %s (build %d)\n", program, version, build)
	_, _ = fmt.Fprintf(w, "Copyright 2024-2026 Tenebris Technologies Inc.\n")
	_, _ = fmt.Fprintf(w, "\nLicense:\n")
	_, _ = fmt.Fprintf(w, "  This software is licenced under the Apache License, Version 2.0.\n")
	_, _ = fmt.Fprintf(w, "  A copy of the license can be found in the LICENSE file.\n")
	_, _ = fmt.Fprintf(w, "\nLedger:\n")
	_, _ = fmt.Fprintf(w, "  Certifications are recorded by the document service. Transactions\n")
	_, _ = fmt.Fprintf(w, "  can be inspected with any ledger explorer.\n")
	_, _ = fmt.Fprintf(w, "\n")
}
