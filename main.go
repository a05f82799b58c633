package main

import "github.com/juniperhealth/juniper_backend/cmd"

func main() {
	cmd.Execute()
}
