//go:build unix

package server

import "syscall"

func reuseAddrControl(network, address string, rawConn syscall.RawConn) error {
	var serr error
	err := rawConn.Control(func(fd uintptr) {
		serr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return serr
}
