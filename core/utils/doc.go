// Package utils provides common utility functions for the card-assets application.
// It includes string helpers shared by the asset and catalog features, such as
// deriving an object filename from a stored asset URL.
package utils
