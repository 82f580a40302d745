// Package translation fetches single-word translations from remote services
package translation
