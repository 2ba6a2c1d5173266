package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const hexdumpWidth = 16

/* hexdump prints data with bytes that have mark set in red. mark may be
 * shorter than data or nil. */
func hexdump(offset int, data []byte, mark []bool) string {
	var result strings.Builder
	red := color.New(color.FgRed)

	marked := func(i int) bool {
		return i < len(mark) && mark[i]
	}

	for line := 0; line < len(data); line += hexdumpWidth {
		var workHex, workASCII strings.Builder

		for i := line; i < line+hexdumpWidth; i++ {
			if i >= len(data) {
				workHex.WriteString("   ")
				workASCII.WriteByte(' ')
			} else {
				m := data[i]
				c := m
				if c < 32 || c > 126 {
					c = '.'
				}

				if marked(i) {
					workHex.WriteString(red.Sprintf("%02x ", m))
					workASCII.WriteString(red.Sprintf("%c", c))
				} else {
					fmt.Fprintf(&workHex, "%02x ", m)
					workASCII.WriteByte(c)
				}
			}

			if i%8 == 7 {
				workHex.WriteByte(' ')
			}
		}

		fmt.Fprintf(&result, "%08x  %s|%s|\n", offset+line, workHex.String(), workASCII.String())
	}

	return result.String()
}
