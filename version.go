package linkedlist

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionFile string

// Version is the current version of the linkedlist module.
var Version = strings.TrimSpace(versionFile)
