// Package diff compares test output against golden files under testdata.
//
// Output is written next to the golden file as path.got<ext>. Identical
// output removes it. Otherwise the error carries a diff, and running with
// $TESTDATA_ACCEPT set replaces path.exp<ext> with the new output.
package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"oss.terrastruct.com/diff"
)

// TestdataJSON compares got, encoded as indented JSON, with path.exp.json.
func TestdataJSON(path string, got interface{}) error {
	b, err := json.MarshalIndent(got, "", "  ")
	if err != nil {
		return err
	}
	return Testdata(path, ".json", append(b, '\n'))
}

func Testdata(path, fileExtension string, got []byte) (err error) {
	expPath := fmt.Sprintf("%s.exp%s", path, fileExtension)
	gotPath := fmt.Sprintf("%s.got%s", path, fileExtension)

	err = os.MkdirAll(filepath.Dir(gotPath), 0755)
	if err != nil {
		return err
	}
	err = os.WriteFile(gotPath, got, 0600)
	if err != nil {
		return err
	}

	exp, err := os.ReadFile(expPath)
	if err == nil && bytes.Equal(exp, got) {
		return os.Remove(gotPath)
	}
	if os.Getenv("TESTDATA_ACCEPT") != "" {
		return os.Rename(gotPath, expPath)
	}
	if err != nil {
		return fmt.Errorf("missing %s (rerun with $TESTDATA_ACCEPT=1 to accept): %w", expPath, err)
	}

	ds, err := diff.Files(expPath, gotPath)
	if err != nil {
		return err
	}
	return fmt.Errorf("diff (rerun with $TESTDATA_ACCEPT=1 to accept):\n%s", ds)
}
