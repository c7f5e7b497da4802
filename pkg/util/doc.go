// Package util provides small helpers shared across mockdb packages.
package util
