package fuzztests

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxSeedBytes = 64 << 10

// textSeeds are operands that sit on representation boundaries.
var textSeeds = []string{
	"0",
	"-0",
	"+1",
	"32767",
	"32768",
	"-32769",
	"1_000_000",
	"9223372036854775807",
	"-9223372036854775808",
	// Base^MaxDigits and Base^MaxDigits - 1.
	"5922386521532855740161817506647119732883018558947359509044845726112560091729648156474603305162988578607512400425457279991804428268870599332596921062626576000993556884845161077691136496092218188572933193945756793025561702170624",
	"5922386521532855740161817506647119732883018558947359509044845726112560091729648156474603305162988578607512400425457279991804428268870599332596921062626576000993556884845161077691136496092218188572933193945756793025561702170623",
	"",
	"-",
	"_1",
	"1__2",
	"１２３",
}

func addTextSeeds(f *testing.F) {
	for _, s := range textSeeds {
		f.Add(s)
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every operand found in the repository's batch
// samples.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil || len(src) > maxSeedBytes {
			return nil
		}
		sc := bufio.NewScanner(bytes.NewReader(src))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			for _, field := range strings.Fields(line) {
				f.Add(field)
			}
		}
		return nil
	})
	if err != nil {
		f.Fatalf("walk testdata: %v", err)
	}
}

// digitSeeds are raw operand encodings for FuzzArithmetic: two bytes per
// digit, least significant first, top bit ignored.
var digitSeeds = []struct {
	a, b       []byte
	negA, negB bool
}{
	{a: []byte{0x40, 0x9c}, b: []byte{0x03, 0x00}},
	{a: []byte{0xff, 0x7f, 0xff, 0x7f}, b: []byte{0x01, 0x00}},
	{a: []byte{0xff, 0x7f, 0xff, 0x7f, 0x01, 0x00}, b: []byte{0xff, 0x7f, 0x01, 0x00}, negA: true},
	{a: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x7f, 0xff, 0x7f}, b: []byte{0xff, 0x7f, 0xff, 0x7f, 0x01, 0x00}, negB: true},
	{a: bytes.Repeat([]byte{0xff, 0x7f}, 50), b: bytes.Repeat([]byte{0xff, 0x7f}, 50)},
	{a: bytes.Repeat([]byte{0x01, 0x40}, 30), b: []byte{0x00, 0x00}},
}

func addDigitSeeds(f *testing.F) {
	for _, s := range digitSeeds {
		f.Add(s.a, s.b, s.negA, s.negB)
	}
}
