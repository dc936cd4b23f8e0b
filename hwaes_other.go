//go:build !amd64 && !arm64

package rijndael

func hasHardwareAES() bool {
	return false
}
