// Package config parses the estimation/simulation config file format: a
// text file of "keyword = value" pairs, comments marked by '#', matching
// estimconfigparser.h / configparser.c. Config holds every parsed field
// with defaults matching the original's DEFAULT_* constants; Load parses
// a file and validates it; BuildRegistry resolves the parsed structural/
// attribute/dyadic/interaction parameter names against the changestat
// reference function library.
package config
