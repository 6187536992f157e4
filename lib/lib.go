// Package lib contains the LAL prelude. The driver and the test helpers
// evaluate Script before any user program runs.
package lib

// Script is the prelude source.
const Script = `
# LAL prelude.

# Gather the arguments into a list.
(defun 'list '* (+ *))

# First and last element of a list.
(defun 'first 'ls (nth 0 ls))
(defun 'last 'ls (nth (- (len ls) 1) ls))

# (inc n) / (dec n)
(defun 'inc 'n (+ n 1))
(defun 'dec 'n (- n 1))
`
