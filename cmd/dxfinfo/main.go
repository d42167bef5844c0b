package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/zooyer/golib/xos"
)

func main() {
	err := rootCmd.Execute()
	if viper.GetBool("pause") {
		xos.PauseExit()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
