// derive_address.go prints the wallet address for a mnemonic file.
// Usage: go run scripts/derive_address.go <mnemonicfile>
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/AION721963/aion-wallet-sdk/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_address <mnemonicfile>")
		os.Exit(1)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	phrase := strings.Join(strings.Fields(string(data)), " ")
	w, err := wallet.ImportFromMnemonic(phrase)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("path=%s\n", wallet.DerivationPath)
	fmt.Printf("address=%s\n", w.PublicKey)
}
