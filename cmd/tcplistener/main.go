package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

func main() {
	addr := flag.String("addr", ":42069", "listen address")
	flag.Parse()

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "listen:", err)
		os.Exit(1)
	}
	defer listener.Close()
	fmt.Printf("Listening on %s...\n", listener.Addr())

	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Println("Accept error:", err)
			continue
		}

		go handleConnection(conn)
	}
}

// handleConnection dumps every request on conn and answers each with an
// empty 200.
func handleConnection(conn net.Conn) {
	defer conn.Close()

	parser := request.NewParser(conn)
	w := response.NewWriter(conn)

	for {
		req, err := parser.ReadRequest()
		if err != nil {
			if !errors.Is(err, request.ErrNoRequest) {
				fmt.Println("Read error:", err)
			}
			return
		}

		fmt.Println("Request line:")
		fmt.Printf("- Method: %s\n", req.Method)
		fmt.Printf("- Target: %s\n", req.Path)
		fmt.Println("Headers:")
		for name, value := range req.Headers.All() {
			fmt.Printf("- %s: %s\n", name, value)
		}
		if req.HasBody() {
			fmt.Println("Body:")
			fmt.Println(string(req.Body))
		}

		if err := w.Write(response.New(response.StatusOK)); err != nil {
			fmt.Println("Write error:", err)
			return
		}
		if req.WantsClose() {
			return
		}
	}
}
