package main

import "citekit/src/internal/gitutil"

// indirection for testability
var commitFiles = gitutil.Commit
