//go:build !unix

package server

import "syscall"

// The runtime's defaults are kept on platforms without a portable
// SO_REUSEADDR.
func reuseAddrControl(network, address string, rawConn syscall.RawConn) error {
	return nil
}
