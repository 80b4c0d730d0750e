package main

import "checkout-domains/internal/cli"

func main() {
	cli.Execute()
}
