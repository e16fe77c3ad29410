package main

import "github.com/wdavew/surf.el/cmd"

func main() {
	cmd.Execute()
}
