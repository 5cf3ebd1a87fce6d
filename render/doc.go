// Package render draws alignment results, score matrices and dot plots as
// plain text or JSON. It is presentation only: nothing here computes or
// validates an alignment.
package render
