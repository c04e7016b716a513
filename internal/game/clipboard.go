package game

import "github.com/atotto/clipboard"

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll
