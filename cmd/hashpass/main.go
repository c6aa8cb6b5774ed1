// Command hashpass prints a bcrypt hash of the given password, ready to
// paste into the ADMIN_PASSWORD configuration of the backend.
package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const defaultCost = 10

func main() {
	if len(os.Args) < 2 || os.Args[1] == "" {
		fmt.Fprintln(os.Stderr, "usage: hashpass <password>")
		os.Exit(1)
	}

	cost, err := costFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Hashed password:")
	fmt.Println(string(hash))
	fmt.Println()
	fmt.Println("Add this to your .env file as:")
	fmt.Printf("ADMIN_PASSWORD=%s\n", hash)
}

// costFromEnv reads BCRYPT_COST, defaulting to 10. Out-of-range values
// are an error rather than silently clamped.
func costFromEnv() (int, error) {
	raw := os.Getenv("BCRYPT_COST")
	if raw == "" {
		return defaultCost, nil
	}
	cost, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid BCRYPT_COST %q: %v", raw, err)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return 0, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cost, nil
}
