//go:build amd64

package rijndael

import "golang.org/x/sys/cpu"

func hasHardwareAES() bool {
	return cpu.X86.HasAES
}
