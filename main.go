package main

import (
	"os"

	"keyword-monitor/cmd"
)

func main() {
	// 错误信息由 cobra 输出
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
