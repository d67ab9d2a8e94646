// Package crawler implements the directory traversal engine and the
// extraction pipeline that turns listing pages into facility records.
package crawler
