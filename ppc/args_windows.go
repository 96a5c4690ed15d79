package main

// expand globs the file arguments, since the Windows shell leaves
// wildcards to the program.
func expand(a []string) []string { return glob(a) }
