package main

import (
	"fmt"
	"log"

	"github.com/lattice-lang/tools/internal/doccomment"
	"github.com/lattice-lang/tools/internal/signature"
)

func main() {
	// Sample block copied from builtins_math.c
	src := `/// @builtin sqrt(x: Float) -> Float
/// @category Math
/// Returns the square root of x.
/// @example sqrt(16.0)  // 4.0
double lat_sqrt(double x);

/// @method push(value: Any) -> Array
/// @category Array Methods
/// Appends value and returns the array for chaining.
LatValue lat_array_push(LatArray *arr, LatValue value);

/// Not a documented entry, no marker tag on the opening line.
static void helper(void);
`

	entries := doccomment.Parse(src)
	fmt.Printf("Parsed %d entries\n", len(entries))
	if len(entries) != 2 {
		log.Fatalf("expected 2 entries, got %d", len(entries))
	}

	for _, e := range entries {
		fmt.Printf("Kind: %s\n", e.Kind)
		fmt.Printf("Name: %s\n", e.Name)
		fmt.Printf("Category: %s\n", e.Category)
		fmt.Printf("Description: %s\n", e.Description)
		fmt.Printf("Examples: %d\n", len(e.Examples))

		// Check the signature splits the way the renderer expects
		for _, tok := range signature.Tokenize(e.Signature) {
			fmt.Printf("  token kind=%q text=%q\n", tok.Kind, tok.Text)
		}
	}

	fmt.Println("All operations completed successfully")
}
