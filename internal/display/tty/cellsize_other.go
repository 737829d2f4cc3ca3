//go:build !unix

package tty

import "fmt"

func detectCellSize() (cellW, cellH float64, err error) {
	return 0, 0, fmt.Errorf("TIOCGWINSZ not available on this platform")
}
