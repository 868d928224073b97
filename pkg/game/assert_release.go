//go:build !invdebug

package game

const debugAsserts = false
