/*
	accents generates accent colored variants of an icon theme and registers them in the extension manifest
*/

package main

import "github.com/hoppxi/accents/internal/cmd"

func main() {
	cmd.Execute()
}
