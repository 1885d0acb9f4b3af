package main

import "gitlab.com/paramountdax-exchange/psp_dashboard/cmd"

func main() {
	cmd.Execute()
}
