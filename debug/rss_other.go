//go:build !windows && !unix

package debug

func residentSetSize() (uint64, error) { return 0, nil }
