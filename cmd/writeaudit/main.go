package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yungbote/nutriplan-backend/internal/archcheck"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	report, err := archcheck.Audit(filepath.Join(root, "internal", "services"))
	if err != nil {
		exitf("audit: %v", err)
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		exitf("marshal report: %v", err)
	}
	fmt.Println(string(out))
	if !report.Clean() {
		os.Exit(2)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
