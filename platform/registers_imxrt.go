//go:build imxrt1010

package platform

import "boardcode-go/imxrt/ral"

func registers() ral.File { return ral.MMIO{} }
